package dto

import (
	envelopeDomain "github.com/Arpan-gl/mirfa-test-app/internal/envelope/domain"
)

// ListRecordsResponse represents a paginated list of encrypted records in API responses.
type ListRecordsResponse struct {
	Data  []RecordResponse `json:"data"`
	Total int64            `json:"total"`
}

// MapRecordsToListResponse converts a slice of domain records to a list response.
func MapRecordsToListResponse(records []*envelopeDomain.EncryptedRecord, total int64) ListRecordsResponse {
	data := make([]RecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, MapRecordToResponse(record))
	}

	return ListRecordsResponse{
		Data:  data,
		Total: total,
	}
}
