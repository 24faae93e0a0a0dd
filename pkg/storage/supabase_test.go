package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient("", "", "resumes").Configured())
	assert.False(t, NewClient("https://xyz.supabase.co", "", "resumes").Configured())
	assert.True(t, NewClient("https://xyz.supabase.co", "key", "resumes").Configured())
}

func TestPublicURL(t *testing.T) {
	c := NewClient("https://xyz.supabase.co/", "key", "resumes")
	assert.Equal(t,
		"https://xyz.supabase.co/storage/v1/object/public/resumes/user1/file.pdf",
		c.PublicURL("user1/file.pdf"))
}

func TestSplitPublicURL(t *testing.T) {
	bucket, object, ok := splitPublicURL("https://xyz.supabase.co/storage/v1/object/public/resumes/user1/file.pdf")
	assert.True(t, ok)
	assert.Equal(t, "resumes", bucket)
	assert.Equal(t, "user1/file.pdf", object)

	_, _, ok = splitPublicURL("https://xyz.supabase.co/other/path")
	assert.False(t, ok)

	_, _, ok = splitPublicURL("https://xyz.supabase.co/storage/v1/object/public/resumes")
	assert.False(t, ok)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces become underscores", "my resume.pdf", "my_resume.pdf"},
		{"non-ascii stripped", "résumé.PDF", "rsum.pdf"},
		{"unsafe chars stripped", "a/b\\c:d.txt", "abcd.txt"},
		{"fully stripped name gets a fallback", "日本語.pdf", "file.pdf"},
		{"no extension", "README", "README"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestUploadRequiresConfiguration(t *testing.T) {
	c := NewClient("", "", "resumes")
	_, err := c.Upload(context.Background(), "user1/file.pdf", []byte("%PDF"), "application/pdf")
	assert.Error(t, err)
}
