package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nymtech/nym-explorer-indexer/internal/types"
	"github.com/nymtech/nym-explorer-indexer/pkg"
)

type handler struct {
	service Service
}

func (h *handler) healthcheck(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		writeError(w, r, types.NewError(http.StatusServiceUnavailable, types.ServiceUnavailable, err))
		return
	}
	writeData(w, "Server is up and running")
}

func (h *handler) network(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.NetworkInfo(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, newNetworkResponse(doc))
}

func (h *handler) listNodes(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.ListNodes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	nodes := make([]NodeResponse, 0, len(docs))
	for _, doc := range docs {
		nodes = append(nodes, NewNodeResponse(doc))
	}
	writeData(w, nodes)
}

func (h *handler) getNode(w http.ResponseWriter, r *http.Request) {
	nodeID, err := parseNodeID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc, err := h.service.GetNode(r.Context(), nodeID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, NewNodeResponse(doc))
}

func (h *handler) nodeDelegations(w http.ResponseWriter, r *http.Request) {
	nodeID, err := parseNodeID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	delegations, err := h.service.NodeDelegations(r.Context(), nodeID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if delegations == nil {
		delegations = []types.Delegation{}
	}
	writeData(w, delegations)
}

func (h *handler) account(w http.ResponseWriter, r *http.Request) {
	address, err := parseAddress(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	overview, serviceErr := h.service.AccountOverview(r.Context(), address)
	if serviceErr != nil {
		writeError(w, r, serviceErr)
		return
	}
	writeData(w, NewAccountResponse(overview))
}

func (h *handler) accountDelegations(w http.ResponseWriter, r *http.Request) {
	address, err := parseAddress(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.service.AccountDelegations(r.Context(), address)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]DelegationResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, NewDelegationResponse(record))
	}
	writeData(w, resp)
}

func parseNodeID(r *http.Request) (uint32, *types.Error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, fmt.Sprintf("invalid node id: %q", raw))
	}
	return uint32(id), nil
}

func parseAddress(r *http.Request) (string, *types.Error) {
	address := chi.URLParam(r, "address")
	if err := pkg.ValidateNymAddress(address); err != nil {
		return "", types.NewValidationFailedError(err)
	}
	return address, nil
}
