package credential

import "database/sql"

// PostgresRepository stores the single credential record in a one-row table.
// The fixed id keeps the "at most one record" invariant inside the schema.
type PostgresRepository struct {
	db *sql.DB
}

const (
	createCredentialTableQuery = `
		CREATE TABLE IF NOT EXISTS credential (
			id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			token TEXT NOT NULL DEFAULT '',
			user_email TEXT NOT NULL DEFAULT '',
			user_password TEXT NOT NULL DEFAULT '',
			user_name TEXT NOT NULL DEFAULT ''
		)
	`
	loadCredentialQuery = `
		SELECT token, user_email, user_password, user_name
		FROM credential
		WHERE id = 1
	`
	saveCredentialQuery = `
		INSERT INTO credential (id, token, user_email, user_password, user_name)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET token = EXCLUDED.token,
			user_email = EXCLUDED.user_email,
			user_password = EXCLUDED.user_password,
			user_name = EXCLUDED.user_name
	`
	setTokenQuery = `
		INSERT INTO credential (id, token)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET token = EXCLUDED.token
	`
	clearTokenQuery      = `UPDATE credential SET token = '' WHERE id = 1`
	clearCredentialQuery = `DELETE FROM credential WHERE id = 1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the credential table when missing.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createCredentialTableQuery)
	return err
}

func (r *PostgresRepository) Load() (Record, error) {
	var rec Record
	err := r.db.QueryRow(loadCredentialQuery).
		Scan(&rec.Token, &rec.Email, &rec.Password, &rec.Name)
	if err == sql.ErrNoRows {
		return Record{}, nil
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *PostgresRepository) Save(rec Record) error {
	_, err := r.db.Exec(saveCredentialQuery, rec.Token, rec.Email, rec.Password, rec.Name)
	return err
}

func (r *PostgresRepository) SetToken(token string) error {
	_, err := r.db.Exec(setTokenQuery, token)
	return err
}

func (r *PostgresRepository) ClearToken() error {
	_, err := r.db.Exec(clearTokenQuery)
	return err
}

func (r *PostgresRepository) Clear() error {
	_, err := r.db.Exec(clearCredentialQuery)
	return err
}
