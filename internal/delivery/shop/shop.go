package shop

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	authDelivery "mattespel/internal/delivery/auth"
	profileDomain "mattespel/internal/domain/profile"
	shopDomain "mattespel/internal/domain/shop"
	errs "mattespel/internal/errors"
	"mattespel/internal/httpresponse"
	shopUC "mattespel/internal/usecase/shop"
	"mattespel/internal/utils"
)

type ShopHandler struct {
	log    *zap.SugaredLogger
	auth   *authDelivery.AuthHandler
	shopUC *shopUC.ShopUsecaseHandler
}

type PurchaseRequest struct {
	ItemID string `json:"itemId"`
	Price  *int   `json:"price"`
}

type EquipRequest struct {
	ItemID   string `json:"itemId"`
	Category string `json:"category"`
}

type ProfileResponse struct {
	Profile profileDomain.Profile `json:"profile"`
}

type ItemsResponse struct {
	Items []shopDomain.Item `json:"items"`
}

func NewShopHandler(log *zap.SugaredLogger, auth *authDelivery.AuthHandler, uc *shopUC.ShopUsecaseHandler) *ShopHandler {
	return &ShopHandler{
		log:    log,
		auth:   auth,
		shopUC: uc,
	}
}

// Purchase godoc
// @Summary Buy a shop item
// @Description Debits the catalog price and adds the item to the owned set
// @Tags shop
// @Accept json
// @Produce json
// @Param purchase body PurchaseRequest true "Item to buy"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 401 {object} httpresponse.ErrorResponse
// @Failure 404 {object} httpresponse.ErrorResponse
// @Router /purchase [post]
func (h *ShopHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	u, ok := h.auth.UserFromRequest(w, r)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("Purchase: malformed JSON: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	p, err := h.shopUC.Purchase(r.Context(), u.ID, req.ItemID, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInsufficientFunds):
			h.log.Warnf("Purchase: user %s cannot afford item %s", u.ID, req.ItemID)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: "Not enough credits"})
			return
		case errors.Is(err, errs.ErrAlreadyOwned):
			h.log.Warnf("Purchase: user %s already owns item %s", u.ID, req.ItemID)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: "Item already purchased"})
			return
		case errors.Is(err, errs.ErrProfileNotFound):
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: "Profile not found"})
			return
		case errors.Is(err, errs.ErrInvalidInput):
			h.log.Errorf("Purchase: rejected request from user %s: %v", u.ID, err)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		default:
			h.log.Errorf("Purchase: internal error for user %s: %v", u.ID, err)
			httpresponse.WriteInternalErrorResponse(w)
			return
		}
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, ProfileResponse{Profile: p})
}

// Equip godoc
// @Summary Equip an owned item
// @Description Places the item into the slot its catalog category names
// @Tags shop
// @Accept json
// @Produce json
// @Param equip body EquipRequest true "Item to equip"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 401 {object} httpresponse.ErrorResponse
// @Failure 404 {object} httpresponse.ErrorResponse
// @Router /equip [post]
func (h *ShopHandler) Equip(w http.ResponseWriter, r *http.Request) {
	u, ok := h.auth.UserFromRequest(w, r)
	if !ok {
		return
	}

	var req EquipRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("Equip: malformed JSON: ", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	p, err := h.shopUC.Equip(r.Context(), u.ID, req.ItemID, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotOwned):
			h.log.Warnf("Equip: user %s does not own item %s", u.ID, req.ItemID)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: "Item not purchased"})
			return
		case errors.Is(err, errs.ErrProfileNotFound):
			httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
				httpresponse.ErrorResponse{ErrorDescription: "Profile not found"})
			return
		case errors.Is(err, errs.ErrInvalidInput):
			h.log.Errorf("Equip: rejected request from user %s: %v", u.ID, err)
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
				httpresponse.ErrorResponse{ErrorDescription: err.Error()})
			return
		default:
			h.log.Errorf("Equip: internal error for user %s: %v", u.ID, err)
			httpresponse.WriteInternalErrorResponse(w)
			return
		}
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, ProfileResponse{Profile: p})
}

// Items godoc
// @Summary List the shop catalog
// @Tags shop
// @Produce json
// @Success 200 {object} ItemsResponse
// @Router /shop/items [get]
func (h *ShopHandler) Items(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, ItemsResponse{Items: shopDomain.Items})
}
