// internal/workers/notification/send-recommendation/handler_test.go
package sendrecommendation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"guidance-workers/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
)

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

type MockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

func createTestConfig() *Config {
	return &Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "noreply@guidance.example.com",
		AWSRegion:    "eu-central-1",
		SMSPriority:  "high",
		Timeout:      30 * time.Second,
	}
}

func createTestInput(notificationType string) *Input {
	return &Input{
		RecipientID:      "student-001",
		RecipientType:    RecipientTypeStudent,
		NotificationType: notificationType,
		Priority:         "high",
		Metadata: map[string]interface{}{
			"kind":     "career",
			"topMatch": "Software Developer",
		},
	}
}

func TestHandler_Execute_Success(t *testing.T) {
	tests := []struct {
		name         string
		emailEnabled bool
		smsEnabled   bool
		priority     string
		wantStatus   string
	}{
		{
			name:         "email and SMS success",
			emailEnabled: true,
			smsEnabled:   true,
			priority:     "high",
			wantStatus:   StatusSent,
		},
		{
			name:         "email only success",
			emailEnabled: true,
			smsEnabled:   false,
			priority:     "medium",
			wantStatus:   StatusSent,
		},
		{
			name:         "SMS only for high priority",
			emailEnabled: false,
			smsEnabled:   true,
			priority:     "high",
			wantStatus:   StatusSent,
		},
		{
			name:         "no SMS for medium priority",
			emailEnabled: false,
			smsEnabled:   true,
			priority:     "medium",
			wantStatus:   StatusDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(`SELECT email, phone FROM students WHERE id = \$1`).
				WithArgs("student-001").
				WillReturnRows(sqlmock.NewRows([]string{"email", "phone"}).
					AddRow("student@example.com", "+359881234567"))

			mockSES := &MockSESService{
				SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
					assert.Equal(t, "student@example.com", params.Destination.ToAddresses[0])
					assert.Equal(t, "noreply@guidance.example.com", *params.Source)
					return &ses.SendEmailOutput{}, nil
				},
			}

			mockSNS := &MockSNSService{
				PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
					assert.Equal(t, "+359881234567", *params.PhoneNumber)
					return &sns.PublishOutput{}, nil
				},
			}

			config := createTestConfig()
			config.EmailEnabled = tt.emailEnabled
			config.SMSEnabled = tt.smsEnabled

			handler := &Handler{
				config:      config,
				db:          db,
				logger:      logger.NewTestLogger(t),
				sesClient:   mockSES,
				snsClient:   mockSNS,
				templateMap: loadTemplates(),
			}

			input := createTestInput(TypeRecommendationsReady)
			input.Priority = tt.priority
			output, err := handler.Execute(context.Background(), input)

			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, tt.wantStatus, output.Status)
			assert.NotEmpty(t, output.NotificationID)
			assert.NotEmpty(t, output.SentAt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHandler_Execute_RecipientNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT email, phone FROM students WHERE id = \$1`).
		WithArgs("student-001").
		WillReturnError(sql.ErrNoRows)

	handler := &Handler{
		config:      createTestConfig(),
		db:          db,
		logger:      logger.NewTestLogger(t),
		sesClient:   &MockSESService{},
		snsClient:   &MockSNSService{},
		templateMap: loadTemplates(),
	}

	output, err := handler.Execute(context.Background(), createTestInput(TypeRecommendationsReady))

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, StatusDisabled, output.Status)
	assert.NotEmpty(t, output.NotificationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_GuardianRecipient(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT guardian_email, guardian_phone FROM students WHERE id = \$1`).
		WithArgs("student-001").
		WillReturnRows(sqlmock.NewRows([]string{"guardian_email", "guardian_phone"}).
			AddRow("parent@example.com", ""))

	mockSES := &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			assert.Equal(t, "parent@example.com", params.Destination.ToAddresses[0])
			return &ses.SendEmailOutput{}, nil
		},
	}

	handler := &Handler{
		config:      createTestConfig(),
		db:          db,
		logger:      logger.NewTestLogger(t),
		sesClient:   mockSES,
		snsClient:   &MockSNSService{},
		templateMap: loadTemplates(),
	}

	input := createTestInput(TypeEligibilityUpdate)
	input.RecipientType = RecipientTypeGuardian
	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_EmailFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT email, phone FROM students WHERE id = \$1`).
		WithArgs("student-001").
		WillReturnRows(sqlmock.NewRows([]string{"email", "phone"}).
			AddRow("student@example.com", "+359881234567"))

	mockSES := &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, errors.New("SES service unavailable")
		},
	}

	handler := &Handler{
		config:      createTestConfig(),
		db:          db,
		logger:      logger.NewTestLogger(t),
		sesClient:   mockSES,
		snsClient:   &MockSNSService{},
		templateMap: loadTemplates(),
	}

	output, err := handler.Execute(context.Background(), createTestInput(TypeRecommendationsReady))

	assert.NoError(t, err)
	assert.Equal(t, StatusFailed, output.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_InvalidContactDisablesChannel(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT email, phone FROM students WHERE id = \$1`).
		WithArgs("student-001").
		WillReturnRows(sqlmock.NewRows([]string{"email", "phone"}).
			AddRow("not-an-email", "123"))

	handler := &Handler{
		config:      createTestConfig(),
		db:          db,
		logger:      logger.NewTestLogger(t),
		sesClient:   &MockSESService{},
		snsClient:   &MockSNSService{},
		templateMap: loadTemplates(),
	}

	output, err := handler.Execute(context.Background(), createTestInput(TypeRecommendationsReady))

	assert.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_UnknownTemplate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT email, phone FROM students WHERE id = \$1`).
		WithArgs("student-001").
		WillReturnRows(sqlmock.NewRows([]string{"email", "phone"}).
			AddRow("student@example.com", ""))

	handler := &Handler{
		config:      createTestConfig(),
		db:          db,
		logger:      logger.NewTestLogger(t),
		sesClient:   &MockSESService{},
		snsClient:   &MockSNSService{},
		templateMap: loadTemplates(),
	}

	input := createTestInput("bogus_type")
	output, err := handler.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestRenderTemplate(t *testing.T) {
	data := map[string]interface{}{
		"kind":     "career",
		"topMatch": "Software Developer",
		"count":    5,
	}

	rendered := renderTemplate("Your {{kind}} list has {{count}} entries, best: {{topMatch}}. {{missing}} done.", data)
	assert.Equal(t, "Your career list has 5 entries, best: Software Developer.  done.", rendered)
}
