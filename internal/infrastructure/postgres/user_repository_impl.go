package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kudoswall/kudos-wall-backend/internal/domain/entity"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Save persists a new user. The password is hashed here if it is still in
// its plaintext state; only hashes ever reach storage.
func (r *UserRepository) Save(u *entity.User) error {
	ctx := context.Background()

	hashed, err := u.Password.Hash()
	if err != nil {
		return err
	}
	u.Password = hashed

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, is_email_verified, role_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, u.ID, u.Name, u.Email.String(), u.Password.Value(), u.IsEmailVerified, u.RoleID)

	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicate
		}
		return err
	}

	if u.RoleType == "" {
		if role, err := r.roleName(ctx, u.RoleID); err == nil {
			u.RoleType = role
		}
	}
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	return r.getOne(`
		SELECT u.id, u.name, u.email, u.password_hash, u.is_email_verified,
		       u.role_id, r.name, u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1
	`, id)
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`
		SELECT u.id, u.name, u.email, u.password_hash, u.is_email_verified,
		       u.role_id, r.name, u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1
	`, email)
}

func (r *UserRepository) getOne(query string, arg any) (*entity.User, error) {
	ctx := context.Background()
	var s entity.UserSnapshot

	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.IsEmailVerified,
		&s.RoleID, &s.RoleType, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return entity.ReconstituteUser(s)
}

func (r *UserRepository) FindAllExcept(userID string) ([]*entity.User, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.name, u.email, u.password_hash, u.is_email_verified,
		       u.role_id, r.name, u.created_at, u.updated_at
		FROM users u
		JOIN roles r ON r.id = u.role_id
		WHERE u.id <> $1
		ORDER BY u.name
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var s entity.UserSnapshot
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.IsEmailVerified,
			&s.RoleID, &s.RoleType, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		u, err := entity.ReconstituteUser(s)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// DeleteAll exists for test cleanup only. Kudos rows must go first; the
// test-support service handles the ordering.
func (r *UserRepository) DeleteAll() error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users`)
	return err
}

func (r *UserRepository) roleName(ctx context.Context, roleID int) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM roles WHERE id = $1`, roleID).Scan(&name)
	return name, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
