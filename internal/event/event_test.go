package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("decodes session.idle", func(t *testing.T) {
		ev, err := Parse([]byte(`{"type":"session.idle","properties":{"sessionID":"s1"}}`))
		require.NoError(t, err)
		assert.Equal(t, KindSessionIdle, ev.Type)
		assert.Equal(t, "s1", ev.Properties.SessionID)
	})

	t.Run("decodes session.error payload", func(t *testing.T) {
		raw := `{"type":"session.error","properties":{"sessionID":"s2","error":{"type":"api","data":{"message":"rate limited"}}}}`
		ev, err := Parse([]byte(raw))
		require.NoError(t, err)
		require.NotNil(t, ev.Properties.Error)
		assert.Equal(t, "api", ev.Properties.Error.Type)
		assert.Equal(t, "rate limited", ev.Properties.Error.Data.Message)
	})

	t.Run("decodes permission text", func(t *testing.T) {
		ev, err := Parse([]byte(`{"type":"permission.asked","properties":{"sessionID":"s3","permission":"Run rm -rf"}}`))
		require.NoError(t, err)
		assert.Equal(t, "Run rm -rf", ev.Properties.Permission)
		assert.True(t, ev.Type.IsPermission())
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := Parse([]byte(`{"type":"session.created","properties":{"sessionID":"s4"}}`))
		assert.Error(t, err)
	})

	t.Run("rejects missing session id", func(t *testing.T) {
		_, err := Parse([]byte(`{"type":"session.idle","properties":{}}`))
		assert.Error(t, err)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := Parse([]byte(`{`))
		assert.Error(t, err)
	})
}

func TestErrorInfoAborted(t *testing.T) {
	assert.True(t, (&ErrorInfo{Type: "aborted"}).Aborted())
	assert.True(t, (&ErrorInfo{Type: "Aborted"}).Aborted())
	assert.False(t, (&ErrorInfo{Type: "api"}).Aborted())

	var nilErr *ErrorInfo
	assert.False(t, nilErr.Aborted())
}
