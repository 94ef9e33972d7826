package request_models

import "time"

type HealthMetricRequest struct {
	MetricType string     `json:"metricType" binding:"required,oneof=bloodPressure bloodSugar weight heartRate"`
	Value1     float64    `json:"value1" binding:"required"`
	Value2     *float64   `json:"value2"`
	Date       *time.Time `json:"date"`
}

type MealRequest struct {
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	MealType    string `json:"mealType" binding:"required,oneof=breakfast lunch dinner snacks"`
	Description string `json:"description" binding:"required"`
}

type ReminderRequest struct {
	MedicineName string `json:"medicineName" binding:"required"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time" binding:"required"`
}

type EventRequest struct {
	Title string    `json:"title" binding:"required"`
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}
