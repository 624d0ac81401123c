package imagegen

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"syscall"
	"testing"

	"genai-studio-be/internal/constant"
	"genai-studio-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		in     string
		ratio  entity.AspectRatio
		width  int
		height int
	}{
		{"1:1", entity.AspectRatioSquare, 768, 768},
		{"16:9", entity.AspectRatioLandscape, 1024, 576},
		{"9:16", entity.AspectRatioPortrait, 576, 1024},
		{"4:3", entity.AspectRatioClassic, 1024, 768},
		{"", entity.AspectRatioSquare, 768, 768},
		{"21:9", entity.AspectRatioSquare, 768, 768},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ratio, width, height := ResolveDimensions(tt.in)
			assert.Equal(t, tt.ratio, ratio)
			assert.Equal(t, tt.width, width)
			assert.Equal(t, tt.height, height)
		})
	}
}

func TestDataURL(t *testing.T) {
	r := &Result{Data: []byte("png"), ContentType: "image/png"}
	assert.Equal(t, "data:image/png;base64,cG5n", r.DataURL())

	r = &Result{Data: []byte("jpg"), ContentType: "image/jpeg"}
	assert.True(t, strings.HasPrefix(r.DataURL(), "data:image/jpeg;base64,"))

	assert.True(t, strings.HasPrefix((&Result{Data: []byte("x")}).DataURL(), "data:image/png;base64,"))
}

func TestClassifyError(t *testing.T) {
	longBody := strings.Repeat("x", 300)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unauthorized",
			err:  &StatusError{Code: 401, Body: []byte(`{"error":"bad token"}`)},
			want: constant.MsgImageAuthError,
		},
		{
			name: "forbidden",
			err:  &StatusError{Code: 403},
			want: constant.MsgImageAuthError,
		},
		{
			name: "busy",
			err:  &StatusError{Code: 503, Body: []byte(longBody)},
			want: fmt.Sprintf(constant.MsgImageBusyErrorFn, longBody[:100]),
		},
		{
			name: "rate limited",
			err:  &StatusError{Code: 429},
			want: constant.MsgImageRateLimited,
		},
		{
			name: "other status",
			err:  &StatusError{Code: 500, Body: []byte(longBody)},
			want: fmt.Sprintf(constant.MsgImageStatusErrorFn, 500, longBody[:200]),
		},
		{
			name: "binary body",
			err:  &StatusError{Code: 500, Body: []byte{0xff, 0xfe}},
			want: fmt.Sprintf(constant.MsgImageStatusErrorFn, 500, "Received non-text response."),
		},
		{
			name: "dns",
			err:  fmt.Errorf("post: %w", &net.DNSError{Err: "no such host", Name: "example.invalid"}),
			want: constant.MsgImageNetworkError,
		},
		{
			name: "connection refused",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)},
			want: constant.MsgImageNetworkError,
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "An unexpected error occurred: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestTruncateKeepsRunes(t *testing.T) {
	assert.Equal(t, "é", truncate("éé", 3))
	assert.Equal(t, "abc", truncate("abc", 10))
}
