package config

import "fieldtrack/models"

// ReportCollections maps each report kind to its configured collection name.
func ReportCollections() map[models.ReportKind]string {
	return map[models.ReportKind]string{
		models.QuickSales:      AppConfig.CollectionQuickSales,
		models.DetailedSales:   AppConfig.CollectionSales,
		models.EarlyAssessment: AppConfig.CollectionEarlyAssessment,
		models.Attendance:      AppConfig.CollectionAttendance,
	}
}
