// Package imagegen holds the provider-agnostic parts of text-to-image generation.
package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"unicode/utf8"

	"genai-studio-be/internal/constant"
	"genai-studio-be/internal/entity"
)

type Request struct {
	Prompt            string
	Width             int
	Height            int
	NumInferenceSteps int
	GuidanceScale     float64
}

// Result is the raw artifact returned upstream.
type Result struct {
	Data        []byte
	ContentType string
}

// DataURL embeds the artifact so it can be stored and rendered without a blob store.
func (r *Result) DataURL() string {
	contentType := r.ContentType
	if contentType == "" {
		contentType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(r.Data))
}

type Provider interface {
	Generate(ctx context.Context, req Request) (*Result, error)
	Configured() bool
	Model() string
}

// StatusError is a non-2xx upstream reply with its raw body.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("image api error (status %d): %s", e.Code, truncate(string(e.Body), constant.ImageErrorDetailLength))
}

// ResolveDimensions maps an aspect ratio to SDXL-friendly pixel sizes.
// Unrecognised ratios fall back to square.
func ResolveDimensions(aspectRatio string) (entity.AspectRatio, int, int) {
	switch entity.AspectRatio(aspectRatio) {
	case entity.AspectRatioLandscape:
		return entity.AspectRatioLandscape, 1024, 576
	case entity.AspectRatioPortrait:
		return entity.AspectRatioPortrait, 576, 1024
	case entity.AspectRatioClassic:
		return entity.AspectRatioClassic, 1024, 768
	default:
		return entity.AspectRatioSquare, 768, 768
	}
}

// ClassifyError turns a provider failure into the message shown to the user.
func ClassifyError(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if !utf8.Valid(statusErr.Body) {
			return fmt.Sprintf(constant.MsgImageStatusErrorFn, statusErr.Code, "Received non-text response.")
		}
		detail := string(statusErr.Body)
		switch statusErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return constant.MsgImageAuthError
		case http.StatusServiceUnavailable:
			return fmt.Sprintf(constant.MsgImageBusyErrorFn, truncate(detail, constant.ImageBusyDetailLength))
		case http.StatusTooManyRequests:
			return constant.MsgImageRateLimited
		default:
			return fmt.Sprintf(constant.MsgImageStatusErrorFn, statusErr.Code, truncate(detail, constant.ImageErrorDetailLength))
		}
	}

	if isNetworkError(err) {
		return constant.MsgImageNetworkError
	}
	return fmt.Sprintf(constant.MsgImageUnexpectedFn, err.Error())
}

func isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
