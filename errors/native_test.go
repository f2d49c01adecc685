package errors

import (
	stderrors "errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromNative(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"not exist", &fs.PathError{Op: "stat", Path: "/a", Err: fs.ErrNotExist}, CodeNotFound},
		{"enoent", &fs.PathError{Op: "stat", Path: "/a", Err: syscall.ENOENT}, CodeNotFound},
		{"not dir", &fs.PathError{Op: "stat", Path: "/a", Err: syscall.ENOTDIR}, CodeNotDirectory},
		{"permission", &fs.PathError{Op: "open", Path: "/a", Err: fs.ErrPermission}, CodeForbidden},
		{"eacces", &fs.PathError{Op: "open", Path: "/a", Err: syscall.EACCES}, CodeForbidden},
		{"busy", syscall.EBUSY, CodeUnavailable},
		{"timeout", syscall.ETIMEDOUT, CodeUnavailable},
		{"other", stderrors.New("short read"), CodeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromNative(tt.err, "stat", "dir1")
			assert.Equal(t, tt.want, err.Code())
			assert.Equal(t, "stat", err.Context()["op"])
			assert.Equal(t, "dir1", err.Context()["path"])
			assert.True(t, Is(err, tt.err))
		})
	}
}

func TestFromNative_Nil(t *testing.T) {
	assert.Nil(t, FromNative(nil, "stat", "x"))
}

func TestFromNative_KeepsPlatformError(t *testing.T) {
	original := New(CodeForbidden, "outside root")
	err := FromNative(original, "resolve", "../x")

	assert.Equal(t, CodeForbidden, err.Code())
	assert.Equal(t, "outside root", err.Message())
	assert.Equal(t, "resolve", err.Context()["op"])
}
