package app

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/payment"
)

func (app *Application) PurchaseTicketsHandler(
	w http.ResponseWriter,
	r *http.Request,
	params api.PurchaseTicketsHandlerParams) {

	logger := app.contextGetLogger(r)

	var input api.PurchaseTicketsHandlerJSONRequestBody

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ticketTypeRequests, err := toTicketTypeRequests(input.TicketTypeRequests)
	if err != nil {
		logger.Warn("purchase request contains an invalid ticket type request", "error", err)
		app.badRequestResponse(w, r, err)
		return
	}

	accountID := toAccountID(input)

	ctx := r.Context()
	if params.IdempotencyKey != nil {
		ctx = payment.ContextWithIdempotencyKey(ctx, params.IdempotencyKey.String())
	}

	summary, err := app.ticketService.PurchaseTickets(ctx, accountID, ticketTypeRequests...)
	if err != nil {
		var invalidPurchase *domain.InvalidPurchaseError

		switch {
		case errors.Is(err, domain.ErrPaymentFailed), errors.Is(err, domain.ErrSeatReservationFailed):
			app.serverErrorResponse(w, r, err)
		case errors.As(err, &invalidPurchase):
			app.invalidPurchaseResponse(w, r, invalidPurchase)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.PurchaseResponse{
		Message:       summary.Message(),
		AccountId:     summary.AccountID,
		SeatsReserved: summary.SeatsReserved,
		TotalCost:     summary.TotalCost.String(),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toAccountID returns 0 for a missing or non-integer account id, which the ticket
// service rejects as an unrecognised account.
func toAccountID(input api.PurchaseRequest) int64 {
	accountID, err := input.AccountId.Int64()
	if err != nil {
		return 0
	}

	return accountID
}

func toTicketTypeRequests(inputs []api.TicketTypeRequest) ([]domain.TicketTypeRequest, error) {
	ticketTypeRequests := make([]domain.TicketTypeRequest, len(inputs))

	for i, v := range inputs {
		noOfTickets, err := v.NoOfTickets.Int64()
		if err != nil {
			return nil, fmt.Errorf("ticketTypeRequests[%d]: %w", i, domain.ErrInvalidTicketCount)
		}

		if noOfTickets > math.MaxInt32 || noOfTickets < math.MinInt32 {
			return nil, fmt.Errorf("ticketTypeRequests[%d]: %w", i, domain.ErrTicketCountOutOfRange)
		}

		ticketTypeRequest, err := domain.NewTicketTypeRequest(domain.TicketType(v.Type), int(noOfTickets))
		if err != nil {
			return nil, fmt.Errorf("ticketTypeRequests[%d]: %w", i, err)
		}

		ticketTypeRequests[i] = ticketTypeRequest
	}

	return ticketTypeRequests, nil
}
