package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/models"
)

// Error variables
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)

// ApplicationReader defines read-only operations for job applications.
type ApplicationReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.JobApplicationDB, error)
	ListAll(ctx context.Context) ([]models.JobApplicationAdminDB, error)
	GetByID(ctx context.Context, id int64) (*models.JobApplicationDB, error)
}

// ApplicationWriter defines write operations for job applications.
type ApplicationWriter interface {
	Save(ctx context.Context, userID int64, fields models.ApplicationFields) (*models.JobApplicationDB, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.JobApplicationDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ApplicationService handles job-application operations and status-event publishing.
type ApplicationService struct {
	reader      ApplicationReader
	writer      ApplicationWriter
	kafkaWriter KafkaWriter
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(reader ApplicationReader, writer ApplicationWriter, kafkaWriter KafkaWriter) *ApplicationService {
	return &ApplicationService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// ListOwn returns the caller's applications, newest first.
func (svc *ApplicationService) ListOwn(ctx context.Context, userID int64) ([]models.JobApplicationDB, error) {
	apps, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list applications", "user_id", userID, "err", err)
		return nil, err
	}
	return apps, nil
}

// Create stores a new application. The owner is always the authenticated
// caller, regardless of anything in the submitted fields.
func (svc *ApplicationService) Create(ctx context.Context, userID int64, fields models.ApplicationFields) (*models.JobApplicationDB, error) {
	app, err := svc.writer.Save(ctx, userID, fields)
	if err != nil {
		logger.Log.Errorw("failed to save application", "user_id", userID, "err", err)
		return nil, err
	}
	return app, nil
}

// AdminListAll returns every application with its owner's identity.
func (svc *ApplicationService) AdminListAll(ctx context.Context) ([]models.JobApplicationAdminDB, error) {
	apps, err := svc.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list all applications", "err", err)
		return nil, err
	}
	return apps, nil
}

// AdminUpdateStatus mutates an application's status and publishes a
// status-change event. Unknown statuses and unknown ids fail before any write.
func (svc *ApplicationService) AdminUpdateStatus(ctx context.Context, id int64, status string) (*models.JobApplicationDB, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	current, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get application", "id", id, "err", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrApplicationNotFound
	}

	updated, err := svc.writer.UpdateStatus(ctx, id, status)
	if err != nil {
		logger.Log.Errorw("failed to update application status", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrApplicationNotFound
	}

	svc.publishStatusEvent(ctx, models.ApplicationStatusEvent{
		EventID:       uuid.New().String(),
		ApplicationID: updated.ID,
		UserID:        updated.UserID,
		OldStatus:     current.Status,
		NewStatus:     updated.Status,
		Timestamp:     time.Now().Unix(),
	})

	return updated, nil
}

// publishStatusEvent publishes a status-change event to Kafka.
// Publishing failures are logged and never surfaced to the caller.
func (svc *ApplicationService) publishStatusEvent(ctx context.Context, event models.ApplicationStatusEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal status event", "event_id", event.EventID, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish status event", "event_id", event.EventID, "err", err)
		return
	}

	logger.Log.Infow("published status event",
		"event_id", event.EventID,
		"application_id", event.ApplicationID,
		"old_status", event.OldStatus,
		"new_status", event.NewStatus,
	)
}
