package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rpires71/PK-BookingService/internal/domain"
	"github.com/rpires71/PK-BookingService/pkg/dbmetrics"
	"github.com/rpires71/PK-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"user_id",
	"guest_name",
	"guest_email",
	"guest_phone",
	"table_id",
	"timeslot_id",
	"booking_date",
	"party_size",
	"status",
	"reference",
	"special_requests",
	"cancelled_at",
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

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Нарушение unique constraint на reference возвращается как ErrDuplicateReference:
// вызывающий код генерирует новый номер и повторяет вставку в рамках той же
// транзакционной попытки. Нарушение уникальности (user, booking_date, timeslot)
// возвращается как ErrDuplicateUserBooking.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"table_id",
			"timeslot_id",
			"booking_date",
			"party_size",
			"status",
			"reference",
			"special_requests",
		).
		Values(
			booking.UserID,
			booking.GuestName,
			booking.GuestEmail,
			booking.GuestPhone,
			booking.TableID,
			booking.TimeSlotID,
			booking.BookingDate,
			booking.PartySize,
			booking.Status,
			booking.Reference,
			booking.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByReference получает бронирование по клиентскому номеру
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"reference": reference}, "GetByReference")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, method string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where)

	// В транзакции блокируем строку, чтобы конкурентные мутации
	// одного бронирования выполнялись последовательно
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя, новые даты первыми.
// Опционально фильтрует по статусу.
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC, id DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetWithFilter получает бронирования ресторана с гибкой фильтрацией.
// Поддерживает фильтрацию по слоту, периоду, статусу и поиск по имени
// гостя или номеру брони (подстрока, без учёта регистра).
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.TimeSlotID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"timeslot_id": *filter.TimeSlotID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"guest_name": pattern},
			squirrel.ILike{"reference": pattern},
		})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	// Для конкретной даты сортируем по слоту, для периода — новые первыми
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("timeslot_id ASC, id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, id DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// SumActivePartySize возвращает суммарное число гостей в активных
// бронированиях (Pending/Confirmed/Seated) на слот и дату.
// excludeBookingID исключает из суммы собственный вклад бронирования
// при редактировании.
//
// Внутри транзакции строки блокируются через FOR UPDATE перед суммированием:
// конкурентная проверка вместимости на тот же (слот, дату) будет ждать
// завершения текущей транзакции и увидит уже зафиксированное состояние.
// FOR UPDATE нельзя совместить с агрегатами, поэтому party_size выбирается
// построчно и суммируется здесь.
func (r *Repository) SumActivePartySize(ctx context.Context, timeSlotID int64, date time.Time, excludeBookingID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("party_size").
		From("bookings").
		Where(squirrel.Eq{
			"timeslot_id":  timeSlotID,
			"booking_date": date,
			"status":       activeStatusStrings,
		})

	if excludeBookingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeBookingID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumActivePartySize - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: SumActivePartySize - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var partySize int
		if err := rows.Scan(&partySize); err != nil {
			return 0, fmt.Errorf("%w: SumActivePartySize - scan row: %v", ErrScanRow, err)
		}
		total += partySize
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: SumActivePartySize - rows error: %v", ErrScanRow, err)
	}

	return total, nil
}

// Update обновляет изменяемые поля бронирования.
// Reference, владелец и timestamps создания не изменяются.
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("table_id", booking.TableID).
		Set("timeslot_id", booking.TimeSlotID).
		Set("booking_date", booking.BookingDate).
		Set("party_size", booking.PartySize).
		Set("special_requests", booking.SpecialRequests).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkRowsAffected(result, "Update")
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkRowsAffected(result, "UpdateStatus")
}

// Cancel переводит бронирование в статус Cancelled и ставит cancelled_at.
// cancelled_at заполняется только здесь: инвариант "cancelled_at установлен
// тогда и только тогда, когда статус Cancelled" закреплён и CHECK constraint'ом.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	return checkRowsAffected(result, "Cancel")
}

// CountByStatus возвращает количество бронирований в разрезе статусов за период
func (r *Repository) CountByStatus(ctx context.Context, startDate, endDate *time.Time) ([]domain.StatusCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		GroupBy("status").
		OrderBy("COUNT(*) DESC")

	if startDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *startDate})
	}
	if endDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *endDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.StatusCount, 0)
	for rows.Next() {
		var sc domain.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CountBySlot возвращает популярность слотов за период: число активных
// бронирований и суммарное число гостей на каждый слот
func (r *Repository) CountBySlot(ctx context.Context, startDate, endDate *time.Time) ([]domain.SlotPopularity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"b.timeslot_id",
		"t.time",
		"COUNT(*)",
		"COALESCE(SUM(b.party_size), 0)",
	).
		From("bookings b").
		Join("timeslots t ON t.id = b.timeslot_id").
		Where(squirrel.Eq{"b.status": activeStatusStrings}).
		GroupBy("b.timeslot_id", "t.time").
		OrderBy("COUNT(*) DESC, t.time ASC")

	if startDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.booking_date": *startDate})
	}
	if endDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.booking_date": *endDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	popularity := make([]domain.SlotPopularity, 0)
	for rows.Next() {
		var sp domain.SlotPopularity
		if err := rows.Scan(&sp.TimeSlotID, &sp.Time, &sp.Bookings, &sp.Guests); err != nil {
			return nil, fmt.Errorf("%w: CountBySlot - scan row: %v", ErrScanRow, err)
		}
		popularity = append(popularity, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountBySlot - rows error: %v", ErrScanRow, err)
	}

	return popularity, nil
}

// CountPerDay возвращает сводку бронирований по дням за период
func (r *Repository) CountPerDay(ctx context.Context, startDate, endDate *time.Time) ([]domain.DayCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"booking_date",
		"COUNT(*)",
		"COALESCE(SUM(party_size), 0)",
	).
		From("bookings").
		GroupBy("booking_date").
		OrderBy("booking_date ASC")

	if startDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *startDate})
	}
	if endDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *endDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountPerDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountPerDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.DayCount, 0)
	for rows.Next() {
		var dc domain.DayCount
		if err := rows.Scan(&dc.Date, &dc.Bookings, &dc.Guests); err != nil {
			return nil, fmt.Errorf("%w: CountPerDay - scan row: %v", ErrScanRow, err)
		}
		days = append(days, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountPerDay - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.GuestPhone,
		&booking.TableID,
		&booking.TimeSlotID,
		&booking.BookingDate,
		&booking.PartySize,
		&booking.Status,
		&booking.Reference,
		&booking.SpecialRequests,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func checkRowsAffected(result sql.Result, method string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
