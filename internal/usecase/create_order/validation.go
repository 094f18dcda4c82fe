package create_order

import "fmt"

func validateRequest(req *Request) error {
	if len(req.Items) == 0 {
		return ErrEmptyOrder
	}

	for i, item := range req.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: item %d: productID must be positive", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d: quantity must be positive", ErrInvalidInput, i)
		}
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.Address == "" {
		return fmt.Errorf("%w: delivery address is required", ErrInvalidInput)
	}

	return nil
}
