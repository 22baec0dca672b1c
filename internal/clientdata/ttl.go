package clientdata

import "time"

// TTLNewsSearch bounds how long one upstream news query is reused.
// Price history has no default here: HISTORY_CACHE_TTL sets it and zero disables it.
const TTLNewsSearch = 30 * time.Minute
