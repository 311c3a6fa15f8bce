// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ballots

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/ncn/api/utils"
	"github.com/vechain/ncn/network"
	"github.com/vechain/ncn/thor"
)

type Ballots struct {
	network *network.Network
}

func New(n *network.Network) *Ballots {
	return &Ballots{network: n}
}

func (b *Ballots) handleGetBallot(w http.ResponseWriter, _ *http.Request) error {
	box, err := b.network.Ballot()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertBox(box))
}

func (b *Ballots) handleGetEpoch(w http.ResponseWriter, _ *http.Request) error {
	return utils.WriteJSON(w, &Epoch{Current: b.network.Epoch()})
}

func (b *Ballots) handleGetVoter(w http.ResponseWriter, req *http.Request) error {
	operator, err := thor.ParseAddress(mux.Vars(req)["operator"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "operator"))
	}
	state, err := b.network.Voter(*operator)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertVoter(state))
}

func (b *Ballots) handlePostVote(w http.ResponseWriter, req *http.Request) error {
	var body VoteRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	receipt, err := b.network.SubmitVote(body.message())
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &VoteResponse{
		Epoch:     receipt.Epoch,
		Weight:    receipt.Weight,
		Approved:  receipt.Approved,
		Finalized: receipt.Finalized,
		Ballot:    convertBox(receipt.Ballot),
	})
}

// Mount registers the ballot, epoch, voter and vote routes under pathPrefix.
func (b *Ballots) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/ballot").
		Methods(http.MethodGet).
		Name("GET /ballot").
		HandlerFunc(utils.WrapHandlerFunc(b.handleGetBallot))
	sub.Path("/epoch").
		Methods(http.MethodGet).
		Name("GET /epoch").
		HandlerFunc(utils.WrapHandlerFunc(b.handleGetEpoch))
	sub.Path("/voters/{operator}").
		Methods(http.MethodGet).
		Name("GET /voters/{operator}").
		HandlerFunc(utils.WrapHandlerFunc(b.handleGetVoter))
	sub.Path("/votes").
		Methods(http.MethodPost).
		Name("POST /votes").
		HandlerFunc(utils.WrapHandlerFunc(b.handlePostVote))
}
