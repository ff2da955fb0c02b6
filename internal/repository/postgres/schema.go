package postgres

import "context"

// Schema statements are idempotent. The unique constraints here are the
// real enforcement of code uniqueness and the one-application-per-
// (job,candidate) and one-save-per-(candidate,job) invariants; the
// usecase-level existence checks only produce nicer error messages.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id          BIGSERIAL PRIMARY KEY,
		code        VARCHAR(8) NOT NULL UNIQUE,
		name        TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		user_code     VARCHAR(10) NOT NULL UNIQUE,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role_id       BIGINT NOT NULL REFERENCES roles(id),
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id           BIGSERIAL PRIMARY KEY,
		user_id      BIGINT NOT NULL UNIQUE REFERENCES users(id),
		company_code VARCHAR(10) NOT NULL UNIQUE,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		address      TEXT NOT NULL DEFAULT '',
		website      TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL,
		logo_url     TEXT NOT NULL DEFAULT '',
		status       VARCHAR(16) NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL UNIQUE REFERENCES users(id),
		candidate_code VARCHAR(10) NOT NULL UNIQUE,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		gender         VARCHAR(8) NOT NULL DEFAULT 'OTHER',
		birthdate      DATE,
		phone          TEXT NOT NULL DEFAULT '',
		email          TEXT NOT NULL,
		education      TEXT NOT NULL DEFAULT '',
		experience     TEXT NOT NULL DEFAULT '',
		skills         TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS job_categories (
		id          BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		base_salary DOUBLE PRECISION NOT NULL CHECK (base_salary > 0),
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id             BIGSERIAL PRIMARY KEY,
		company_id     BIGINT NOT NULL REFERENCES companies(id),
		category_id    BIGINT NOT NULL REFERENCES job_categories(id),
		job_code       VARCHAR(10) NOT NULL UNIQUE,
		title          TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		requirement    TEXT NOT NULL DEFAULT '',
		salary         DOUBLE PRECISION NOT NULL,
		location       TEXT NOT NULL DEFAULT '',
		start_date     DATE NOT NULL,
		end_date       DATE NOT NULL,
		max_candidates INT NOT NULL DEFAULT 0 CHECK (max_candidates >= 0),
		status         VARCHAR(16) NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL,
		CHECK (start_date <= end_date)
	)`,
	`CREATE TABLE IF NOT EXISTS cvs (
		id           BIGSERIAL PRIMARY KEY,
		candidate_id BIGINT NOT NULL REFERENCES candidates(id),
		cv_code      VARCHAR(10) NOT NULL UNIQUE,
		file         TEXT NOT NULL DEFAULT '',
		status       VARCHAR(16) NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)`,
	// candidate_id is denormalized from the CV's owner so the
	// one-application-per-(job,candidate) rule can be a real constraint.
	`CREATE TABLE IF NOT EXISTS applications (
		id               BIGSERIAL PRIMARY KEY,
		job_id           BIGINT NOT NULL REFERENCES jobs(id),
		cv_id            BIGINT NOT NULL REFERENCES cvs(id),
		candidate_id     BIGINT NOT NULL REFERENCES candidates(id),
		application_code VARCHAR(10) NOT NULL UNIQUE,
		apply_time       TIMESTAMPTZ NOT NULL,
		status           VARCHAR(16) NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL,
		UNIQUE (job_id, candidate_id)
	)`,
	`CREATE TABLE IF NOT EXISTS saved_jobs (
		id           BIGSERIAL PRIMARY KEY,
		candidate_id BIGINT NOT NULL REFERENCES candidates(id),
		job_id       BIGINT NOT NULL REFERENCES jobs(id),
		saved_time   TIMESTAMPTZ NOT NULL,
		UNIQUE (candidate_id, job_id)
	)`,
}

// EnsureSchema creates missing tables and constraints. Statements are safe
// to run on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
