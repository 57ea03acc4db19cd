package repositories

import (
	"database/sql"
	"fmt"

	"isp_billing_backend/internal/models"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(executor SQLExecutor, client *models.Client) error
	GetClients() ([]models.Client, error)
	UpdateClient(executor SQLExecutor, client *models.Client) error
	UpdateClientStatus(executor SQLExecutor, id int64, status string) error
	UpdateAllDueDates(executor SQLExecutor, dueDate string) (int64, error)
	DeleteClient(executor SQLExecutor, id int64) error
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

// CreateClient inserts a new client and fills in the DB-assigned ID, status
// and creation timestamp on the passed record.
func (r *clientRepository) CreateClient(executor SQLExecutor, client *models.Client) error {
	query := `INSERT INTO clients (name, email, phone, amount, due_date, wifi, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at`

	client.Status = models.StatusPending

	err := executor.QueryRow(query,
		client.Name, client.Email, client.Phone, client.Amount,
		client.DueDate, client.Wifi, client.Status,
	).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return nil
}

// GetClients retrieves all clients, most recently created first.
func (r *clientRepository) GetClients() ([]models.Client, error) {
	clients := []models.Client{}
	query := `SELECT id, name, email, phone, amount, due_date, wifi, status, created_at
	          FROM clients ORDER BY id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var client models.Client
		if err := rows.Scan(
			&client.ID, &client.Name, &client.Email, &client.Phone,
			&client.Amount, &client.DueDate, &client.Wifi, &client.Status, &client.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateClient overwrites every editable field of an existing client.
// ID, status and created_at are never touched by a full update.
func (r *clientRepository) UpdateClient(executor SQLExecutor, client *models.Client) error {
	query := `UPDATE clients SET
	            name = $1, email = $2, phone = $3, amount = $4, due_date = $5, wifi = $6
	          WHERE id = $7`

	result, err := executor.Exec(query,
		client.Name, client.Email, client.Phone, client.Amount,
		client.DueDate, client.Wifi, client.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateClientStatus persists a new status for one client, leaving all
// other fields untouched.
func (r *clientRepository) UpdateClientStatus(executor SQLExecutor, id int64, status string) error {
	query := `UPDATE clients SET status = $1 WHERE id = $2`

	result, err := executor.Exec(query, status, id)
	if err != nil {
		return fmt.Errorf("%w: updating status for client ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for status update of client ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateAllDueDates applies the given due date to every client row and
// returns the number of rows affected. Zero rows is not an error.
func (r *clientRepository) UpdateAllDueDates(executor SQLExecutor, dueDate string) (int64, error) {
	query := `UPDATE clients SET due_date = $1`

	result, err := executor.Exec(query, dueDate)
	if err != nil {
		return 0, fmt.Errorf("%w: updating all due dates: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: getting rows affected for due date update: %v", ErrDatabaseError, err)
	}
	return rowsAffected, nil
}

// DeleteClient removes a client from the database.
func (r *clientRepository) DeleteClient(executor SQLExecutor, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
