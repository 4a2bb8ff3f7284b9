package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sushrut-patil/college-admission-system/internal/app/models"
	"github.com/sushrut-patil/college-admission-system/internal/pkg/apperrors"
)

// FeeRepository handles database operations for fee payments
type FeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create records a new fee payment
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	sql, args, err := r.sb.Insert("fees").
		Columns("student_id", "amount", "payment_date", "payment_method", "academic_year").
		Values(fee.StudentID, fee.Amount, fee.PaymentDate, fee.PaymentMethod, fee.AcademicYear).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create fee query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&fee.ID, &fee.CreatedAt); err != nil {
		return fmt.Errorf("error recording fee payment: %w", err)
	}

	return nil
}

// GetByID retrieves a fee payment by ID, joined with student details
func (r *FeeRepository) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	sql, args, err := r.sb.Select("f.id", "f.student_id", "f.amount", "f.payment_date",
		"f.payment_method", "f.academic_year", "f.created_at",
		"s.first_name || ' ' || s.last_name", "s.email", "d.name").
		From("fees f").
		Join("students s ON f.student_id = s.id").
		Join("departments d ON s.department_id = d.id").
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get fee query: %w", err)
	}

	var fee models.Fee
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&fee.ID, &fee.StudentID, &fee.Amount, &fee.PaymentDate,
		&fee.PaymentMethod, &fee.AcademicYear, &fee.CreatedAt,
		&fee.StudentName, &fee.StudentEmail, &fee.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, fmt.Errorf("error retrieving fee payment: %w", err)
	}

	return &fee, nil
}

// GetAll retrieves all fee payments with student information, most recent
// payment first
func (r *FeeRepository) GetAll(ctx context.Context) ([]*models.Fee, error) {
	sql, args, err := r.sb.Select("f.id", "f.student_id", "f.amount", "f.payment_date",
		"f.payment_method", "f.academic_year", "f.created_at",
		"s.first_name || ' ' || s.last_name", "s.email", "d.name").
		From("fees f").
		Join("students s ON f.student_id = s.id").
		Join("departments d ON s.department_id = d.id").
		OrderBy("f.payment_date DESC", "f.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list fees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing fee payments: %w", err)
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		var fee models.Fee
		if err := rows.Scan(
			&fee.ID, &fee.StudentID, &fee.Amount, &fee.PaymentDate,
			&fee.PaymentMethod, &fee.AcademicYear, &fee.CreatedAt,
			&fee.StudentName, &fee.StudentEmail, &fee.DepartmentName,
		); err != nil {
			return nil, fmt.Errorf("error scanning fee row: %w", err)
		}
		fees = append(fees, &fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// ListByStudent retrieves one student's payment history, most recent first
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	sql, args, err := r.sb.Select("id", "student_id", "amount", "payment_date",
		"payment_method", "academic_year", "created_at").
		From("fees").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("payment_date DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student fees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing student fees: %w", err)
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		var fee models.Fee
		if err := rows.Scan(
			&fee.ID, &fee.StudentID, &fee.Amount, &fee.PaymentDate,
			&fee.PaymentMethod, &fee.AcademicYear, &fee.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning fee row: %w", err)
		}
		fees = append(fees, &fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// Update updates an existing fee payment
func (r *FeeRepository) Update(ctx context.Context, fee *models.Fee) error {
	sql, args, err := r.sb.Update("fees").
		Set("student_id", fee.StudentID).
		Set("amount", fee.Amount).
		Set("payment_date", fee.PaymentDate).
		Set("payment_method", fee.PaymentMethod).
		Set("academic_year", fee.AcademicYear).
		Where(squirrel.Eq{"id": fee.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update fee query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating fee payment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFeeNotFound
	}

	return nil
}

// Delete deletes a fee payment by ID. Deleting a nonexistent payment is a
// no-op.
func (r *FeeRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting fee payment: %w", err)
	}
	return nil
}

// TotalCollected returns the sum of all recorded payments
func (r *FeeRepository) TotalCollected(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM fees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error totalling fee payments: %w", err)
	}
	return total, nil
}
