package model

import (
	"strconv"
	"strings"
)

// Share codes encode a build as a comma-separated token list:
//
//	"7m"   origin/free-agent player 7 signed with the MLE applied
//	"9v"   player 9 signed on a Vet Min deal
//	"2"    player 2 signed with no exception
//	"T4"   origin player 4 traded away
//	"R105" player 105 signed out of the trade-acquired pool
//
// Decoding is lenient: unknown ids and malformed tokens are skipped,
// matching how shared links from older builds degrade.

// EncodeBuild serializes the session's current build.
func EncodeBuild(s *Session) string {
	var parts []string

	for i := range s.Players {
		p := &s.Players[i]
		switch p.Status {
		case StatusSigned:
			parts = append(parts, strconv.Itoa(int(p.ID))+exceptionSuffix(p))
		case StatusTraded:
			parts = append(parts, "T"+strconv.Itoa(int(p.ID)))
		}
	}
	for i := range s.Acquired {
		p := &s.Acquired[i].Player
		if p.Status == StatusSigned {
			parts = append(parts, "R"+strconv.Itoa(int(p.ID))+exceptionSuffix(p))
		}
	}

	return strings.Join(parts, ",")
}

// ApplyBuild applies an encoded build to a session. The session should
// be freshly created; existing statuses are overwritten token by token.
func ApplyBuild(s *Session, code string) {
	for _, part := range strings.Split(code, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch {
		case strings.HasPrefix(part, "T"):
			if id, ok := parseID(part[1:]); ok {
				if p, err := s.FindPlayer(id); err == nil && p.IsRosterOrigin {
					s.SetStatus(p, StatusTraded)
				}
			}
		case strings.HasPrefix(part, "R"):
			id, useMLE, useVetMin, ok := parseSignedToken(part[1:])
			if !ok {
				continue
			}
			for i := range s.Players {
				if s.Players[i].ID == id && !s.Players[i].IsRosterOrigin && !s.IsAcquired(id) {
					acquired := AcquiredPlayer{Player: s.Players[i]}
					acquired.Status = StatusSigned
					acquired.UseMLE = useMLE
					acquired.UseVetMin = useVetMin
					s.Acquired = append(s.Acquired, acquired)
				}
			}
		default:
			id, useMLE, useVetMin, ok := parseSignedToken(part)
			if !ok {
				continue
			}
			if p, err := s.FindPlayer(id); err == nil {
				s.SetStatus(p, StatusSigned)
				p.UseMLE = useMLE
				p.UseVetMin = useVetMin
			}
		}
	}
}

func exceptionSuffix(p *Player) string {
	if p.UseMLE {
		return "m"
	}
	if p.UseVetMin {
		return "v"
	}
	return ""
}

func parseSignedToken(token string) (id PlayerID, useMLE, useVetMin bool, ok bool) {
	useMLE = strings.HasSuffix(token, "m")
	useVetMin = strings.HasSuffix(token, "v")
	token = strings.TrimSuffix(strings.TrimSuffix(token, "m"), "v")
	id, ok = parseID(token)
	return id, useMLE, useVetMin, ok
}

func parseID(s string) (PlayerID, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return PlayerID(n), true
}
