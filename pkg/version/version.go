package version

// EmptyValue is the value we use when running a version that wasn't compiled
// by `make`. This is helpful for telling when we're running in a unit test.
const EmptyValue = "set-by-make"

// Version is the latest tag on git for releases. On non-release commits, it may
// include additional information such as the most recent commit hash.
var Version = EmptyValue

// UserAgent is the default User-Agent sent to LeetCode. The site rejects
// requests that don't look like they come from a browser.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:123.0) " +
	"Gecko/20100101 Firefox/123.0"
