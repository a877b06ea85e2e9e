package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/akarlsons/chatcart-service/internal/middleware"
)

func TestSetSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		config     CookieConfig
		wantSecure bool
		wantDomain string // Go http strips leading dot from domain per RFC 6265
	}{
		{
			name:       "development config",
			config:     CookieConfig{Secure: false},
			wantSecure: false,
			wantDomain: "",
		},
		{
			name:       "production config",
			config:     CookieConfig{Secure: true, Domain: ".chatcart.example"},
			wantSecure: true,
			wantDomain: "chatcart.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			helper := NewCookieHelper(tt.config)
			helper.SetSessionCookie(c, "token123", 3600)

			cookies := w.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("expected 1 cookie, got %d", len(cookies))
			}

			cookie := cookies[0]
			if cookie.Name != middleware.SessionCookie {
				t.Errorf("cookie name = %s, want %s", cookie.Name, middleware.SessionCookie)
			}
			if cookie.Value != "token123" {
				t.Errorf("cookie value = %s, want token123", cookie.Value)
			}
			if !cookie.HttpOnly {
				t.Error("session cookie should be HttpOnly")
			}
			if cookie.SameSite != http.SameSiteStrictMode {
				t.Errorf("SameSite = %v, want strict", cookie.SameSite)
			}
			if cookie.Secure != tt.wantSecure {
				t.Errorf("Secure = %v, want %v", cookie.Secure, tt.wantSecure)
			}
			if cookie.Domain != tt.wantDomain {
				t.Errorf("Domain = %s, want %s", cookie.Domain, tt.wantDomain)
			}
			if cookie.Path != "/" {
				t.Errorf("Path = %s, want /", cookie.Path)
			}
			if cookie.MaxAge != 3600 {
				t.Errorf("MaxAge = %d, want 3600", cookie.MaxAge)
			}
		})
	}
}

func TestClearSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	helper := NewCookieHelper(CookieConfig{})
	helper.ClearSessionCookie(c)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	cookie := cookies[0]
	if cookie.Value != "" {
		t.Errorf("cleared cookie value = %s, want empty", cookie.Value)
	}
	if cookie.MaxAge != -1 {
		t.Errorf("cleared cookie MaxAge = %d, want -1", cookie.MaxAge)
	}
}

func TestGetSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "test_token"})

	helper := NewCookieHelper(CookieConfig{})
	if got := helper.GetSessionToken(c); got != "test_token" {
		t.Errorf("GetSessionToken() = %s, want test_token", got)
	}
}

func TestGetSessionToken_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	helper := NewCookieHelper(CookieConfig{})
	if got := helper.GetSessionToken(c); got != "" {
		t.Errorf("GetSessionToken() = %s, want empty string", got)
	}
}
