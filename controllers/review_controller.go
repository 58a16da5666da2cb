package controllers

import (
	"net/http"
	"strconv"

	"github.com/Mohisvst29/moal/entity"
	"github.com/Mohisvst29/moal/pkg/resp"
	"github.com/Mohisvst29/moal/repository"

	"github.com/gin-gonic/gin"
)

type ReviewController struct{ Repo *repository.ReviewRepository }

func NewReviewController(repo *repository.ReviewRepository) *ReviewController {
	return &ReviewController{Repo: repo}
}

type createReviewReq struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
}

// POST /reviews (public)
// New reviews stay hidden until an admin approves them.
func (rc *ReviewController) Create(c *gin.Context) {
	if rc.Repo == nil {
		resp.Unavailable(c, "reviews unavailable")
		return
	}

	var req createReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	review := entity.Review{
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := rc.Repo.Create(&review); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /reviews (public, approved only)
func (rc *ReviewController) ListApproved(c *gin.Context) {
	if rc.Repo == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "data": []entity.Review{}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	reviews, err := rc.Repo.FindApproved(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

// GET /admin/reviews
func (rc *ReviewController) ListAll(c *gin.Context) {
	if rc.Repo == nil {
		resp.Unavailable(c, "reviews unavailable")
		return
	}

	reviews, err := rc.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

type approveReviewReq struct {
	Approved *bool `json:"approved" binding:"required"`
}

// PATCH /admin/reviews/:id/approve
func (rc *ReviewController) Approve(c *gin.Context) {
	if rc.Repo == nil {
		resp.Unavailable(c, "reviews unavailable")
		return
	}

	var req approveReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := rc.Repo.SetApproved(c.Param("id"), *req.Approved); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"approved": *req.Approved})
}

// DELETE /admin/reviews/:id
func (rc *ReviewController) Delete(c *gin.Context) {
	if rc.Repo == nil {
		resp.Unavailable(c, "reviews unavailable")
		return
	}

	if err := rc.Repo.Delete(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "review deleted"})
}
