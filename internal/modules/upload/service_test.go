package upload

import (
	"strings"
	"testing"
	"time"

	"github.com/geridir/core/internal/config"
)

func TestCloudinarySignature(t *testing.T) {
	// sha1("timestamp=1700000000" + "shhh")
	got := cloudinarySignature(1700000000, "shhh")
	want := "7a86f1e272b51f924e83645feb971b2f1c003abe"
	if got != want {
		t.Errorf("cloudinarySignature = %s, want %s", got, want)
	}
}

func TestObjectKey(t *testing.T) {
	svc := NewService(config.CloudinaryConfig{}, config.S3Config{Region: "us-east-1"})
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
	}

	key := svc.objectKey("Family Photo.JPG")
	if !strings.HasPrefix(key, "uploads/2026/03/") {
		t.Errorf("key %q not namespaced by month", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key %q should keep a lowercased extension", key)
	}
	if strings.Contains(key, "Family") {
		t.Errorf("key %q leaks the original file name", key)
	}
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.S3Config
		want string
	}{
		{
			"custom domain wins",
			config.S3Config{CustomDomain: "https://cdn.example.com/", Bucket: "b", Endpoint: "https://s3.example.com"},
			"https://cdn.example.com/uploads/x.png",
		},
		{
			"endpoint with bucket path",
			config.S3Config{Endpoint: "https://s3.example.com", Bucket: "media"},
			"https://s3.example.com/media/uploads/x.png",
		},
		{
			"aws default",
			config.S3Config{Bucket: "media", Region: "us-east-1"},
			"https://media.s3.us-east-1.amazonaws.com/uploads/x.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(config.CloudinaryConfig{}, tt.cfg)
			if got := svc.publicURL("uploads/x.png"); got != tt.want {
				t.Errorf("publicURL = %q, want %q", got, tt.want)
			}
		})
	}
}
