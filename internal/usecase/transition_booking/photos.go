package transition_booking

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/m04kA/HSP-BookingService/internal/domain"
)

// dataURLPrefix префикс data-URL, в котором клиент может прислать фотографию
const dataURLPrefix = "data:"

// normalizePhotos приводит присланные фотографии к единому виду.
//
// Разбор алиасных форматов выполняется только здесь, на границе:
// дальше по коду существует ровно один тип domain.CompletionPhoto.
//
// Для каждой записи:
//   - отрезается data-URL префикс, тип контента берётся из него;
//   - если тип не указан ни в data-URL, ни в поле, подставляется дефолтный;
//   - содержимое декодируется из base64.
//
// Записи, не давшие непустого содержимого, отбрасываются - решение о
// достаточности оставшихся принимает вызывающая сторона.
func normalizePhotos(payloads []PhotoPayload, now time.Time) []domain.CompletionPhoto {
	photos := make([]domain.CompletionPhoto, 0, len(payloads))

	for _, payload := range payloads {
		data := strings.TrimSpace(payload.Data)
		contentType := ""

		if strings.HasPrefix(data, dataURLPrefix) {
			data, contentType = splitDataURL(data)
		}

		if contentType == "" && payload.ContentType != nil {
			contentType = strings.TrimSpace(*payload.ContentType)
		}
		if contentType == "" {
			contentType = domain.DefaultPhotoContentType
		}

		if data == "" {
			continue
		}

		content, err := base64.StdEncoding.DecodeString(data)
		if err != nil || len(content) == 0 {
			continue
		}

		photos = append(photos, domain.CompletionPhoto{
			Content:     content,
			ContentType: contentType,
			Filename:    payload.Filename,
			Size:        int64(len(content)),
			UploadedAt:  now,
		})
	}

	return photos
}

// splitDataURL отрезает префикс data-URL и возвращает (payload, contentType).
// Формат: data:image/png;base64,<payload>
func splitDataURL(dataURL string) (string, string) {
	rest := strings.TrimPrefix(dataURL, dataURLPrefix)

	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", ""
	}

	contentType := meta
	if idx := strings.Index(meta, ";"); idx >= 0 {
		contentType = meta[:idx]
	}

	return strings.TrimSpace(payload), strings.TrimSpace(contentType)
}
