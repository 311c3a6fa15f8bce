// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package claims

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/ncn/api/utils"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/thor"
)

type Claims struct {
	network *network.Network
}

func New(n *network.Network) *Claims {
	return &Claims{network: n}
}

func (c *Claims) handlePostClaim(w http.ResponseWriter, req *http.Request) error {
	var body ClaimRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	receipt, err := c.network.SubmitClaim(body.message())
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Receipt{
		Owner:         receipt.Owner,
		Paid:          receipt.Paid,
		ClaimedAmount: receipt.ClaimedAmount,
	})
}

func (c *Claims) handleGetClaim(w http.ResponseWriter, req *http.Request) error {
	owner, err := thor.ParseAddress(mux.Vars(req)["owner"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "owner"))
	}
	resp := &Claim{Owner: *owner}

	state, err := c.network.ClaimState(*owner)
	if err != nil {
		return err
	}
	if state != nil {
		resp.ClaimedAmount = state.ClaimedAmount
	}
	if resp.Balance, err = c.network.Balance(*owner); err != nil {
		return err
	}
	return utils.WriteJSON(w, resp)
}

func (c *Claims) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodPost).
		Name("POST /claims").
		HandlerFunc(utils.WrapHandlerFunc(c.handlePostClaim))
	sub.Path("/{owner}").
		Methods(http.MethodGet).
		Name("GET /claims/{owner}").
		HandlerFunc(utils.WrapHandlerFunc(c.handleGetClaim))
}
