package feed

// parameters is the subscription frame sent on connect. The feed answers
// with the message kinds named in Types and, when PlayByPlayOnConnect is
// set, a backfill of the action log so far.
type parameters struct {
	Type                string `json:"type"`
	Types               string `json:"types"`
	PlayByPlayOnConnect int    `json:"playbyplayOnConnect"`
}

func newParameters(types string, playByPlayOnConnect bool) parameters {
	pbp := 0
	if playByPlayOnConnect {
		pbp = 1
	}
	return parameters{
		Type:                "parameters",
		Types:               types,
		PlayByPlayOnConnect: pbp,
	}
}
