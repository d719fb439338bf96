package agent

import "herbmart/internal/entities"

func ToDomain(a *AgentDB) *entities.DeliveryAgent {
	if a == nil {
		return nil
	}

	agent := &entities.DeliveryAgent{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Email:       a.Email,
		IsAvailable: a.IsAvailable,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}

	if a.Latitude != nil && a.Longitude != nil {
		agent.Location = &entities.GeoPoint{
			Latitude:  *a.Latitude,
			Longitude: *a.Longitude,
		}
	}

	return agent
}

func ToDomainList(agents []AgentDB) []entities.DeliveryAgent {
	result := make([]entities.DeliveryAgent, 0, len(agents))
	for i := range agents {
		result = append(result, *ToDomain(&agents[i]))
	}
	return result
}
