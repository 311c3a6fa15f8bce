// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package roots

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/ncn/api/utils"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/reverts"
)

type Roots struct {
	network *network.Network
}

func New(n *network.Network) *Roots {
	return &Roots{network: n}
}

func (r *Roots) handleGetRewards(w http.ResponseWriter, _ *http.Request) error {
	state, err := r.network.Rewards()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertRewards(state))
}

func (r *Roots) handleGetRoot(w http.ResponseWriter, _ *http.Request) error {
	state, err := r.network.Rewards()
	if err != nil {
		return err
	}
	resp := &Root{Source: convertSource(state.Root)}

	root, err := r.network.Root()
	switch {
	case err == nil:
		resp.Root = &root
	case errors.Is(err, reverts.ErrRootUnavailable):
		resp.Error = err.Error()
	default:
		return err
	}
	return utils.WriteJSON(w, resp)
}

func (r *Roots) handlePostRoot(w http.ResponseWriter, req *http.Request) error {
	var body UpdateRootRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	msg, err := body.message()
	if err != nil {
		return utils.BadRequest(err)
	}
	if err := r.network.SubmitRoot(msg); err != nil {
		return err
	}
	return r.handleGetRoot(w, req)
}

func (r *Roots) handlePostAuthority(w http.ResponseWriter, req *http.Request) error {
	var body UpdateAuthorityRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	if err := r.network.SubmitAuthority(body.message()); err != nil {
		return err
	}
	return r.handleGetRewards(w, req)
}

func (r *Roots) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodGet).
		Name("GET /rewards").
		HandlerFunc(utils.WrapHandlerFunc(r.handleGetRewards))
	sub.Path("/root").
		Methods(http.MethodGet).
		Name("GET /rewards/root").
		HandlerFunc(utils.WrapHandlerFunc(r.handleGetRoot))
	sub.Path("/root").
		Methods(http.MethodPost).
		Name("POST /rewards/root").
		HandlerFunc(utils.WrapHandlerFunc(r.handlePostRoot))
	sub.Path("/authority").
		Methods(http.MethodPost).
		Name("POST /rewards/authority").
		HandlerFunc(utils.WrapHandlerFunc(r.handlePostAuthority))
}
