package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	assert.Nil(t, ToJSON(nil))

	err := WrapWithContext(stderrors.New("/srv/ftp/alice: permission denied"), CodeForbidden, "access denied",
		map[string]interface{}{"path": "/docs"})
	resp := ToJSON(err)

	require.NotNil(t, resp)
	assert.Equal(t, "FORBIDDEN", resp.Code)
	assert.Equal(t, "access denied", resp.Message)
	assert.Equal(t, "PERMANENT", resp.Classification)
	assert.Equal(t, "/docs", resp.Context["path"])
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("plain"))
	assert.Equal(t, "UNKNOWN", resp.Code)
	assert.Equal(t, "plain", resp.Message)
}

func TestMarshalJSON_OmitsCause(t *testing.T) {
	err := Wrap(stderrors.New("/srv/secret/path"), CodeIO, "stat failed")

	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"code":"IO_ERROR","message":"stat failed","classification":"RETRYABLE"}`, string(data))
	assert.NotContains(t, string(data), "secret")
}
