package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"noticeboard-backend/service"
	"noticeboard-backend/storage"

	"github.com/gin-gonic/gin"
)

func newUploadRouter(t *testing.T, limits service.UploadLimits) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.POST("/api/files/upload", NewUploadHandler(store, limits).UploadFile)
	return r
}

func TestUploadFile_Success(t *testing.T) {
	r := newUploadRouter(t, service.DefaultUploadLimits())

	body, contentType := multipartBody(t, nil, &filePart{
		name: "poster.png", mime: "image/png", content: "png-bytes",
	})
	rec, env := doRequest(t, r, http.MethodPost, "/api/files/upload", body, contentType)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var data struct {
		URL              string `json:"url"`
		OriginalFilename string `json:"originalFilename"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(data.URL, storage.URLPrefix) || !strings.HasSuffix(data.URL, ".png") {
		t.Errorf("url = %q", data.URL)
	}
	if data.OriginalFilename != "poster.png" {
		t.Errorf("originalFilename = %q", data.OriginalFilename)
	}
}

func TestUploadFile_SameNameGetsDistinctURLs(t *testing.T) {
	r := newUploadRouter(t, service.DefaultUploadLimits())

	urls := make(map[string]bool)
	for i := 0; i < 2; i++ {
		body, contentType := multipartBody(t, nil, &filePart{
			name: "flyer.pdf", mime: "application/pdf", content: "%PDF-1.4",
		})
		rec, env := doRequest(t, r, http.MethodPost, "/api/files/upload", body, contentType)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d", rec.Code)
		}
		var data struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatal(err)
		}
		if urls[data.URL] {
			t.Fatalf("duplicate URL %q for repeated upload of the same name", data.URL)
		}
		urls[data.URL] = true
	}
}

func TestUploadFile_MissingFile(t *testing.T) {
	r := newUploadRouter(t, service.DefaultUploadLimits())

	body, contentType := multipartBody(t, map[string]string{"other": "field"}, nil)
	rec, env := doRequest(t, r, http.MethodPost, "/api/files/upload", body, contentType)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Error.Code != "MISSING_FILE" {
		t.Errorf("error code = %q", env.Error.Code)
	}
}

func TestUploadFile_Oversize(t *testing.T) {
	r := newUploadRouter(t, service.UploadLimits{MaxFileSize: 4, MaxVideoFileSize: 4})

	body, contentType := multipartBody(t, nil, &filePart{
		name: "poster.png", mime: "image/png", content: "more than four bytes",
	})
	rec, env := doRequest(t, r, http.MethodPost, "/api/files/upload", body, contentType)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if env.Error.Code != "FILE_TOO_LARGE" {
		t.Errorf("error code = %q", env.Error.Code)
	}
}

func TestUploadFile_VideoUsesLargerCeiling(t *testing.T) {
	r := newUploadRouter(t, service.UploadLimits{MaxFileSize: 4, MaxVideoFileSize: 1024})

	body, contentType := multipartBody(t, nil, &filePart{
		name: "tour.mp4", mime: "video/mp4", content: "more than four bytes of video",
	})
	rec, _ := doRequest(t, r, http.MethodPost, "/api/files/upload", body, contentType)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 under the video ceiling", rec.Code)
	}
}
