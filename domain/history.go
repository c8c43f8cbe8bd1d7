package domain

var (
	MessageSuccessAddBasket  = "history basket recorded successfully"
	MessageSuccessGetBaskets = "history baskets retrieved successfully"

	MessageFailedAddBasket  = "failed to record history basket"
	MessageFailedGetBaskets = "failed to retrieve history baskets"
)

type (
	AddBasketRequest struct {
		Basket []string `json:"basket" validate:"required"`
	}

	// AddBasketResponse reports the stored basket, or a null id when the
	// request normalized down to nothing and no record was created.
	AddBasketResponse struct {
		OK bool  `json:"ok"`
		ID *uint `json:"id"`
	}

	BasketResponse struct {
		ID    uint     `json:"id"`
		Items []string `json:"items"`
	}
)
