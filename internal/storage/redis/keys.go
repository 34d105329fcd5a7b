package redis

import (
	"fmt"
	"strconv"

	"github.com/mcoot/players/internal/model"
)

// Key prefix for all player data
const keyPrefix = "players"

// playerMember is how a player ID appears inside index lists and sets
func playerMember(id model.PlayerID) string {
	return strconv.Itoa(int(id))
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return memberKey(playerMember(id))
}

// memberKey returns the Redis key for the player named by an index member
func memberKey(member string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, member)
}

// orderIndexKey returns the Redis key for the LIST of player IDs in insertion order
func orderIndexKey() string {
	return fmt.Sprintf("%s:idx:order", keyPrefix)
}

// squadIndexKey returns the Redis key for the SET of player IDs wearing a squad number
func squadIndexKey(squadNumber int) string {
	return fmt.Sprintf("%s:idx:squad:%d", keyPrefix, squadNumber)
}
