package constants

import "time"

// TimestampFormat is used when parsing --at arguments
const TimestampFormat = time.RFC3339
