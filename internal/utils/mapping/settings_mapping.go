package mapping

import (
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/SscSPs/remittance_pricing/internal/models"
)

// ToDomainPriority converts a model Priority to a domain Priority
func ToDomainPriority(m models.Priority) domain.Priority {
	return domain.Priority{
		PriorityID:  m.PriorityID,
		Name:        m.Name,
		Description: m.Description,
		CostPct:     m.CostPct,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainParam converts a model Param to a domain Param
func ToDomainParam(m models.Param) domain.Param {
	return domain.Param{
		Key:         m.Key,
		Type:        domain.ParamType(m.Type),
		Value:       m.Value,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
