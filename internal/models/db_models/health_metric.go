package db_models

import (
	"time"

	"github.com/google/uuid"
)

type MetricType string

const (
	MetricBloodPressure MetricType = "bloodPressure"
	MetricBloodSugar    MetricType = "bloodSugar"
	MetricWeight        MetricType = "weight"
	MetricHeartRate     MetricType = "heartRate"
)

// HealthMetric is one reading. For blood pressure Value1 is systolic and
// Value2 diastolic; for everything else Value2 stays nil.
type HealthMetric struct {
	BaseModel
	AccountID  uuid.UUID  `gorm:"index"`
	MetricType MetricType `gorm:"index"`
	Value1     float64
	Value2     *float64
	RecordedAt time.Time
}
