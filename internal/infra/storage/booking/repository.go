package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/HSP-BookingService/internal/domain"
	"github.com/m04kA/HSP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/HSP-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// activeSlotIndex имя частичного уникального индекса на (service_id,
// booking_date, start_time) по активным бронированиям
const activeSlotIndex = "uniq_active_booking_slot"

var bookingColumns = []string{
	"id",
	"service_id",
	"customer_id",
	"assigned_to",
	"status",
	"booking_date",
	"start_time",
	"address",
	"estimated_price",
	"payment_method",
	"payment_status",
	"rejection_reason",
	"cancel_reason",
	"rejected_at",
	"completed_at",
	"rating",
	"review",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование со статусом pending.
// ID генерируется здесь и неизменяем после создания.
//
// Авторитетная защита слота - частичный уникальный индекс по
// (service_id, booking_date, start_time) среди активных бронирований:
// конфликт конкурентной вставки возвращается как ErrSlotTaken независимо
// от того, что показала предварительная проверка в usecase.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"service_id",
			"customer_id",
			"status",
			"booking_date",
			"start_time",
			"address",
			"estimated_price",
			"payment_method",
			"payment_status",
		).
		Values(
			booking.ID,
			booking.ServiceID,
			booking.CustomerID,
			booking.Status,
			booking.BookingDate,
			booking.StartTime,
			booking.Address,
			booking.EstimatedPrice,
			booking.PaymentMethod,
			booking.PaymentStatus,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isSlotConflict(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID вместе с фотографиями завершения
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	photos, err := r.getPhotos(ctx, id)
	if err != nil {
		return nil, err
	}
	booking.CompletionPhotos = photos

	return booking, nil
}

// GetTakenTimes возвращает значения start_time всех активных (не отменённых)
// бронирований на указанную услугу и дату. Значения не обрезаются и не
// дедуплицируются - нормализация выполняется в usecase.
//
// Статус в старых записях может храниться как 'cancelled'/'canceled' в любом
// регистре, поэтому фильтр сравнивает LOWER(status).
//
// Внутри транзакции добавляет FOR UPDATE: usecase создания бронирования
// блокирует строки дня перед вставкой
func (r *Repository) GetTakenTimes(ctx context.Context, serviceID int64, date time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("start_time").
		From("bookings").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(notCancelledPredicate()).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTakenTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTakenTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetTakenTimes - scan start_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTakenTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// List получает бронирования с гибкой фильтрацией по статусу, исполнителю,
// услуге, дате и времени. Сортировка - сначала новые (created_at DESC).
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		if *filter.Status == domain.StatusRejected {
			// rejected включает legacy-алиасы отмены
			selectBuilder = selectBuilder.Where(cancelledPredicate())
		} else {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
		}
	}
	if filter.AssignedTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"assigned_to": *filter.AssignedTo})
	}
	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"service_id": *filter.ServiceID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.StartTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"start_time": *filter.StartTime})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByCustomerID получает историю бронирований пользователя, сначала новые.
// Опционально фильтрует по статусу.
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ApplyTransition атомарно применяет переход статуса: обновление срабатывает
// только если текущий статус записи равен from (compare-and-swap).
//
// Если строка не обновилась, статус изменился конкурентным запросом между
// чтением и записью - возвращается ErrStaleStatus, и вызывающая сторона
// сообщает о недопустимом переходе
func (r *Repository) ApplyTransition(ctx context.Context, id uuid.UUID, from domain.BookingStatus, upd *domain.StatusUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", upd.Status).
		Set("updated_at", upd.UpdatedAt).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from})

	if upd.AssignedTo != nil {
		updateBuilder = updateBuilder.Set("assigned_to", *upd.AssignedTo)
	}
	if upd.RejectionReason != nil {
		updateBuilder = updateBuilder.Set("rejection_reason", *upd.RejectionReason)
	}
	if upd.CancelReason != nil {
		updateBuilder = updateBuilder.Set("cancel_reason", *upd.CancelReason)
	}
	if upd.RejectedAt != nil {
		updateBuilder = updateBuilder.Set("rejected_at", *upd.RejectedAt)
	}
	if upd.CompletedAt != nil {
		updateBuilder = updateBuilder.Set("completed_at", *upd.CompletedAt)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ApplyTransition - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ApplyTransition - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ApplyTransition - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStaleStatus
	}

	return nil
}

// AddCompletionPhotos сохраняет нормализованные фотографии завершения.
// Вызывается в одной транзакции с ApplyTransition(completed), чтобы частичный
// набор фотографий никогда не попадал в хранилище.
func (r *Repository) AddCompletionPhotos(ctx context.Context, bookingID uuid.UUID, photos []domain.CompletionPhoto) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_photos").
		Columns("booking_id", "content", "content_type", "filename", "size", "uploaded_at")

	for _, photo := range photos {
		insertBuilder = insertBuilder.Values(
			bookingID,
			photo.Content,
			photo.ContentType,
			photo.Filename,
			photo.Size,
			photo.UploadedAt,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddCompletionPhotos - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddCompletionPhotos - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// getPhotos загружает фотографии завершения бронирования
func (r *Repository) getPhotos(ctx context.Context, bookingID uuid.UUID) ([]domain.CompletionPhoto, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("content", "content_type", "filename", "size", "uploaded_at").
		From("booking_photos").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getPhotos - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getPhotos - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	photos := make([]domain.CompletionPhoto, 0)
	for rows.Next() {
		var photo domain.CompletionPhoto
		var uploadedAt sql.NullTime

		if err := rows.Scan(&photo.Content, &photo.ContentType, &photo.Filename, &photo.Size, &uploadedAt); err != nil {
			return nil, fmt.Errorf("%w: getPhotos - scan photo: %v", ErrScanRow, err)
		}
		photo.UploadedAt = uploadedAt.Time
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getPhotos - rows error: %v", ErrScanRow, err)
	}

	return photos, nil
}

// scanBooking сканирует одну строку в модель бронирования
func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.CustomerID,
		&booking.AssignedTo,
		&booking.Status,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Address,
		&booking.EstimatedPrice,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.RejectionReason,
		&booking.CancelReason,
		&booking.RejectedAt,
		&booking.CompletedAt,
		&booking.Rating,
		&booking.Review,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ServiceID,
			&booking.CustomerID,
			&booking.AssignedTo,
			&booking.Status,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.Address,
			&booking.EstimatedPrice,
			&booking.PaymentMethod,
			&booking.PaymentStatus,
			&booking.RejectionReason,
			&booking.CancelReason,
			&booking.RejectedAt,
			&booking.CompletedAt,
			&booking.Rating,
			&booking.Review,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// cancelledPredicate условие "статус относится к отменённым" с учётом
// legacy-алиасов и регистра
func cancelledPredicate() squirrel.Sqlizer {
	return squirrel.Expr(
		"LOWER(status) IN ("+placeholders(len(domain.CancellationAliases))+")",
		aliasArgs()...,
	)
}

// notCancelledPredicate условие "бронирование активно и держит слот"
func notCancelledPredicate() squirrel.Sqlizer {
	return squirrel.Expr(
		"LOWER(status) NOT IN ("+placeholders(len(domain.CancellationAliases))+")",
		aliasArgs()...,
	)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func aliasArgs() []interface{} {
	args := make([]interface{}, len(domain.CancellationAliases))
	for i, alias := range domain.CancellationAliases {
		args[i] = alias
	}
	return args
}

// isSlotConflict определяет нарушение частичного уникального индекса слота
func isSlotConflict(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation && pqErr.Constraint == activeSlotIndex
	}
	return false
}
