package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"isp_billing_backend/internal/models"
	"isp_billing_backend/internal/repositories"
)

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrClientValidation = errors.New("client data validation error")
	ErrInvalidStatus    = errors.New("invalid client status")
)

// --- Client DTOs ---

// ClientFieldsRequest carries the editable client fields. The same payload is
// used for creation and full updates; phone is the only optional field.
type ClientFieldsRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Amount  string `json:"amount"`
	DueDate string `json:"dueDate"`
	Wifi    string `json:"wifi"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(req ClientFieldsRequest) (*models.Client, error)
	GetClients() ([]models.Client, error)
	UpdateClient(clientID int64, req ClientFieldsRequest) error
	UpdateClientStatus(clientID int64, status string) error
	UpdateAllDueDates(dueDate string) (int64, error)
	DeleteClient(clientID int64) error
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo repositories.ClientRepository
	db         *sql.DB
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, db *sql.DB) ClientService {
	return &clientService{
		clientRepo: repo,
		db:         db,
	}
}

// validateClientFields checks that every required field is present.
// Phone may be empty; nothing beyond presence is validated.
func validateClientFields(req ClientFieldsRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"amount", req.Amount},
		{"dueDate", req.DueDate},
		{"wifi", req.Wifi},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrClientValidation, f.name)
		}
	}
	return nil
}

func (s *clientService) CreateClient(req ClientFieldsRequest) (*models.Client, error) {
	if err := validateClientFields(req); err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Amount:  req.Amount,
		DueDate: req.DueDate,
		Wifi:    req.Wifi,
	}

	if err := s.clientRepo.CreateClient(s.db, client); err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients() ([]models.Client, error) {
	clients, err := s.clientRepo.GetClients()
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(clientID int64, req ClientFieldsRequest) error {
	if err := validateClientFields(req); err != nil {
		return err
	}

	client := &models.Client{
		ID:      clientID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Amount:  req.Amount,
		DueDate: req.DueDate,
		Wifi:    req.Wifi,
	}

	err := s.clientRepo.UpdateClient(s.db, client)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to update client in repository: %w", err)
	}
	return nil
}

// UpdateClientStatus validates the status against the allowed set before the
// request touches storage, so an invalid status never overwrites a record.
func (s *clientService) UpdateClientStatus(clientID int64, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	err := s.clientRepo.UpdateClientStatus(s.db, clientID, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to update client status: %w", err)
	}
	return nil
}

// UpdateAllDueDates sets the due date on every client. An empty store is not
// an error; the returned count is simply zero.
func (s *clientService) UpdateAllDueDates(dueDate string) (int64, error) {
	if strings.TrimSpace(dueDate) == "" {
		return 0, fmt.Errorf("%w: dueDate is required", ErrClientValidation)
	}

	count, err := s.clientRepo.UpdateAllDueDates(s.db, dueDate)
	if err != nil {
		return 0, fmt.Errorf("failed to update due dates: %w", err)
	}
	return count, nil
}

func (s *clientService) DeleteClient(clientID int64) error {
	err := s.clientRepo.DeleteClient(s.db, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
