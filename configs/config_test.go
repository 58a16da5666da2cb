package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCatalogConfigured(t *testing.T) {
	cases := []struct {
		name string
		url  string
		key  string
		want bool
	}{
		{"both set", "host=db.example.com user=moal dbname=postgres", "s3cret", true},
		{"empty url", "", "s3cret", false},
		{"empty key", "host=db.example.com", "", false},
		{"placeholder url", PlaceholderDBURL, "s3cret", false},
		{"placeholder key", "host=db.example.com", PlaceholderDBKey, false},
		{"both placeholders", PlaceholderDBURL, PlaceholderDBKey, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{CatalogDBURL: tc.url, CatalogDBKey: tc.key}
			assert.Equal(t, tc.want, cfg.IsCatalogConfigured())
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "8000")
	t.Setenv("CAFE_NAME", "مقهى موال مراكش")

	cfg := LoadConfig()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "مقهى موال مراكش", cfg.CafeName)
	assert.NotZero(t, cfg.JWTTTL)
}
