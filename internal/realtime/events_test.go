package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_StatusUpdate(t *testing.T) {
	raw := []byte(`{"event":"restaurant-status-update","data":{"message":"Your restaurant has been verified","status":"verified"}}`)

	ev, err := decode(raw)
	require.NoError(t, err)

	update, ok := ev.(*StatusUpdate)
	require.True(t, ok)
	assert.Equal(t, "Your restaurant has been verified", update.Message)
	assert.Equal(t, "verified", update.Status)
}

func TestDecode_NewOrder(t *testing.T) {
	raw := []byte(`{"event":"new-order","data":{"orderId":"64f1c2a9e8b4d0123456abcd"}}`)

	ev, err := decode(raw)
	require.NoError(t, err)

	order, ok := ev.(*NewOrder)
	require.True(t, ok)
	assert.Equal(t, "64f1c2a9e8b4d0123456abcd", order.OrderID)
}

func TestDecode_UnknownEvent(t *testing.T) {
	raw := []byte(`{"event":"rider-location","data":{}}`)

	_, err := decode(raw)
	assert.ErrorIs(t, err, errUnknownEvent)
}

func TestDecode_BadPayload(t *testing.T) {
	_, err := decode([]byte("not json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errUnknownEvent)
}

func TestShortOrderID(t *testing.T) {
	assert.Equal(t, "56abcd", shortOrderID("64f1c2a9e8b4d0123456abcd"))
	assert.Equal(t, "abc", shortOrderID("abc"))
	assert.Equal(t, "123456", shortOrderID("123456"))
}
