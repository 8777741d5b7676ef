package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))

	u := NewUser("Ana", "ana@example.com", "$2b$12$digest", now)

	assert.Equal(t, PlanFree, u.Plan)
	assert.True(t, u.IsActive)
	assert.Equal(t, now.UTC(), u.CreatedAt)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
	assert.Equal(t, time.UTC, u.CreatedAt.Location())
}

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	u := NewUser("Ana", "ana@example.com", "$2b$12$digest", time.Now())

	b, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "$2b$12$digest")
}

func TestUser_ApplyDefaults(t *testing.T) {
	u := &User{}
	u.ApplyDefaults()
	assert.Equal(t, PlanFree, u.Plan)

	u = &User{Plan: PlanPro}
	u.ApplyDefaults()
	assert.Equal(t, PlanPro, u.Plan)
}

func TestBlogPost_TagsNeverNull(t *testing.T) {
	p := &BlogPost{Title: "t"}
	p.ApplyDefaults()

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"tags":[]`)
	assert.Contains(t, string(b), `"published_at":null`)
}

func TestNewContactMessage(t *testing.T) {
	req := ContactRequest{Name: "Bo", Email: "bo@example.com", Subject: "Hi", Message: "Hello"}
	now := time.Now()

	m := NewContactMessage(req, now)

	assert.Equal(t, "Bo", m.Name)
	assert.Equal(t, "bo@example.com", m.Email)
	assert.Equal(t, "Hi", m.Subject)
	assert.Equal(t, "Hello", m.Message)
	assert.True(t, m.CreatedAt.Equal(now))
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "", " ")
	assert.Equal(t, AppBuildInfo{Version: "v1.4.0", Date: "N/A", Commit: "N/A"}, info)
	assert.Equal(t, "Build version: v1.4.0\nBuild date: N/A\nBuild commit: N/A\n", info.String())

	release := info.WithRelease("saas", "")
	assert.Equal(t, "saas", release.Name)
	assert.Equal(t, "v1.4.0", release.Version)
	assert.Equal(t, "2.0.0", info.WithRelease("saas", "2.0.0").Version)
}
