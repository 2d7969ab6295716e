package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

import "fmt"

const RoomKeyPrefix = "room:"

func FormatRoomKey(roomId string) string {
	return fmt.Sprintf("%s%s", RoomKeyPrefix, roomId)
}

func RoomIdFromKey(key string) string {
	return key[len(RoomKeyPrefix):]
}
