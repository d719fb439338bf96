package leave

import "herbmart/internal/entities"

func ToDomain(l *LeaveDB) *entities.LeaveRequest {
	if l == nil {
		return nil
	}
	return &entities.LeaveRequest{
		ID:          l.ID,
		AgentID:     l.AgentID,
		Type:        entities.LeaveType(l.Type),
		Reason:      l.Reason,
		Description: l.Description,
		StartDate:   l.StartDate,
		EndDate:     l.EndDate,
		Status:      entities.LeaveStatusType(l.Status),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func ToDomainList(leaves []LeaveDB) []entities.LeaveRequest {
	result := make([]entities.LeaveRequest, 0, len(leaves))
	for i := range leaves {
		result = append(result, *ToDomain(&leaves[i]))
	}
	return result
}
