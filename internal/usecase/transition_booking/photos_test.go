package transition_booking

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HSP-BookingService/pkg/ptr"
)

func encodePhoto(content string) string {
	return base64.StdEncoding.EncodeToString([]byte(content))
}

func TestNormalizePhotos(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("plain base64 with default content type", func(t *testing.T) {
		photos := normalizePhotos([]PhotoPayload{
			{Data: encodePhoto("front door")},
		}, now)

		require.Len(t, photos, 1)
		assert.Equal(t, []byte("front door"), photos[0].Content)
		assert.Equal(t, "image/jpeg", photos[0].ContentType)
		assert.Equal(t, int64(len("front door")), photos[0].Size)
		assert.Equal(t, now, photos[0].UploadedAt)
	})

	t.Run("data url prefix is stripped and content type taken from it", func(t *testing.T) {
		photos := normalizePhotos([]PhotoPayload{
			{Data: "data:image/png;base64," + encodePhoto("pixels")},
		}, now)

		require.Len(t, photos, 1)
		assert.Equal(t, []byte("pixels"), photos[0].Content)
		assert.Equal(t, "image/png", photos[0].ContentType)
	})

	t.Run("explicit content type wins when data url has none", func(t *testing.T) {
		photos := normalizePhotos([]PhotoPayload{
			{Data: encodePhoto("pixels"), ContentType: ptr.Ptr("image/webp")},
		}, now)

		require.Len(t, photos, 1)
		assert.Equal(t, "image/webp", photos[0].ContentType)
	})

	t.Run("empty and invalid entries are dropped", func(t *testing.T) {
		photos := normalizePhotos([]PhotoPayload{
			{Data: ""},
			{Data: "   "},
			{Data: "%%%not-base64%%%"},
			{Data: "data:image/png;base64,"},
			{Data: encodePhoto("valid")},
		}, now)

		require.Len(t, photos, 1)
		assert.Equal(t, []byte("valid"), photos[0].Content)
	})

	t.Run("filename is carried through", func(t *testing.T) {
		photos := normalizePhotos([]PhotoPayload{
			{Data: encodePhoto("pixels"), Filename: ptr.Ptr("after.jpg")},
		}, now)

		require.Len(t, photos, 1)
		require.NotNil(t, photos[0].Filename)
		assert.Equal(t, "after.jpg", *photos[0].Filename)
	})
}

func TestSplitDataURL(t *testing.T) {
	payload, contentType := splitDataURL("data:image/png;base64,AAAA")
	assert.Equal(t, "AAAA", payload)
	assert.Equal(t, "image/png", contentType)

	payload, contentType = splitDataURL("data:;base64,BBBB")
	assert.Equal(t, "BBBB", payload)
	assert.Equal(t, "", contentType)

	payload, contentType = splitDataURL("data:image/png")
	assert.Equal(t, "", payload)
	assert.Equal(t, "", contentType)
}
