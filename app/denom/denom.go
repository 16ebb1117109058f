package denom

// BaseDenom is the chain's native currency unit. Bids, escrow balances and
// settlement proceeds are all denominated in it.
const BaseDenom = "uarti"
