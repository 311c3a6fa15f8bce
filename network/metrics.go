// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package network

import (
	"github.com/vechain/ncn/metrics"
	"github.com/vechain/ncn/reverts"
)

var (
	metricVotes          = metrics.LazyLoadCounterVec("votes_total", []string{"result"})
	metricBallotEpoch    = metrics.LazyLoadGauge("ballot_epoch")
	metricConsensusEpoch = metrics.LazyLoadGauge("consensus_epoch")
	metricClaims         = metrics.LazyLoadCounterVec("claims_total", []string{"result"})
	metricClaimedAmount  = metrics.LazyLoadCounter("claimed_amount_total")
)

// resultLabel labels a rejected operation by its revert kind.
func resultLabel(err error) string {
	if reverts.IsRevertErr(err) {
		return reverts.KindOf(err).String()
	}
	return "error"
}
