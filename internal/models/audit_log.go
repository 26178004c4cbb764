package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionLogin        = "login"
	AuditActionOTPRequested = "otp_requested"
	AuditActionCreate       = "create"
	AuditActionUpdate       = "update"
	AuditActionPublish      = "publish"
	AuditActionDelete       = "delete"

	AuditEntityOwnerStatement = "owner_statement"
	AuditEntityProperty       = "property"
	AuditEntityReservation    = "reservation"
	AuditEntityExpense        = "expense"
	AuditEntityUser           = "user"
	AuditEntityTask           = "task"
)

// AuditLog records who changed which entity, with before and after snapshots.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityType string     `gorm:"type:varchar(100);not null" json:"entity_type"`
	EntityID   string     `gorm:"type:varchar(255)" json:"entity_id,omitempty"`
	OldValues  JSONBMap   `gorm:"type:text" json:"old_values,omitempty"`
	NewValues  JSONBMap   `gorm:"type:text" json:"new_values,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

// SetNewValue records a field of the entity after the change.
func (al *AuditLog) SetNewValue(key string, value interface{}) {
	if al.NewValues == nil {
		al.NewValues = make(JSONBMap)
	}
	al.NewValues[key] = value
}

// SetOldValue records a field of the entity before the change.
func (al *AuditLog) SetOldValue(key string, value interface{}) {
	if al.OldValues == nil {
		al.OldValues = make(JSONBMap)
	}
	al.OldValues[key] = value
}

func (al *AuditLog) String() string {
	userStr := "system"
	if al.UserID != nil {
		userStr = al.UserID.String()
	}

	return fmt.Sprintf("AuditLog[User: %s, Action: %s, Entity: %s/%s, Time: %s]",
		userStr, al.Action, al.EntityType, al.EntityID, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}

	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// JSONBMap is a JSON object column. It is stored as text so sqlite and postgres share one model.
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if m == nil || len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}

func (m JSONBMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

func (m *JSONBMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var tmp map[string]interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*m = JSONBMap(tmp)
	return nil
}
