// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package irv implements instant-runoff tabulation over ranked ballots.

The package is pure computation: it takes an already-parsed ballot Pool
(voter -> ordered candidate IDs, most preferred first), runs the round
loop, and returns a structured Result. Reading ballots out of storage
and presenting rounds to users belong to the callers in handlers.

# Tabulation

Each round counts first-choice votes (Tally at rank 0). A candidate
holding strictly more than half of the votes cast that round wins and
the election ends. Otherwise the round eliminates one or more
candidates, ballots headed by an eliminated candidate advance to their
next surviving choice, voters with no choices left drop out, and the
next round begins against the smaller pool.

# Elimination

Which candidates leave is decided by a three-tier tie-break:

  - Bulk: the lowest score class goes as a whole when it has one member
    or mathematically cannot catch the next class up.
  - Deeper ranks: otherwise votes at rank 1, 2, ... separate the tied
    candidates, narrowing to the lowest class at each rank until a
    single loser emerges.
  - Random: a complete tie at every rank falls back to a uniformly
    random pick from the tied class.

Randomness is injected as a Picker so callers can seed it (or replace
it) and reproduce a run exactly.

# Determinism

Apart from the random fallback, tabulation is deterministic: score
classes are ordered by candidate ID, and a tie for the lead resolves to
the smallest ID. Two runs over the same pool with the same Picker yield
identical Results.
*/
package irv
