package service

import (
	"context"
	"strings"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
)

// CustomerService exposes the customer roll-up view. Customers are not
// stored as rows of their own; they are derived from the orders table.
type CustomerService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(analyticsRepo repository.AnalyticsRepository) *CustomerService {
	return &CustomerService{analyticsRepo: analyticsRepo}
}

// ListCustomers returns the distinct order customers, optionally
// filtered by a case-insensitive match on name or email.
func (s *CustomerService) ListCustomers(ctx context.Context, search string) ([]repository.CustomerRollup, error) {
	customers, err := s.analyticsRepo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	if search == "" {
		return customers, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]repository.CustomerRollup, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
