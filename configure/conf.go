package conf

var Opts Options

type Options struct {
	WordFile       []string `short:"w" long:"words" value-name:"FILE" description:"file of words to add, one word per line. Can be given more than once"`
	PatternFile    []string `short:"p" long:"patterns" value-name:"FILE" description:"file of patterns to search after all words are added, one pattern per line. Can be given more than once"`
	OpsFile        string   `long:"ops" value-name:"FILE" description:"replay a json operation list, e.g. [[\"WordDictionary\",\"addWord\",\"search\"],[[],[\"bad\"],[\".ad\"]]], and print the json result list. Other inputs are ignored"`
	SourceAddr     string   `short:"s" long:"source" value-name:"SOURCE" description:"host:port of a redis whose keys are added as words. Several nodes are split by semicolon(;), e.g., 10.1.1.1:1000;10.2.2.2:2000"`
	SourcePassword string   `long:"sourcepassword" value-name:"Password" description:"source redis password"`
	SourceAuthType string   `long:"sourceauthtype" value-name:"AUTH-TYPE" default:"auth" description:"useless for opensource redis, valid value:auth/adminauth"`
	SourceDB       int      `long:"sourcedb" default:"0" description:"logical db of the source redis"`
	SourceTimeout  uint64   `long:"sourcetimeout" value-name:"MS" default:"0" description:"source redis connect/read/write timeout in milliseconds, 0 means no timeout"`
	BatchCount     int      `long:"batchcount" value-name:"COUNT" default:"256" description:"the count of keys per scan or words per batch, valid value [1, 10000]"`
	Qps            int      `short:"q" long:"qps" default:"15000" description:"max scan batch limit per second, valid value [1, 5000000]"`
	FilterList     string   `short:"f" long:"filterlist" value-name:"FILTER" default:"" description:"if the filter list isn't empty, only matched words are added. The input should be split by '|'. The end of the string is followed by a * to indicate a prefix match, otherwise it is a full match. e.g.: 'abc*|efg|m*' matches 'abc', 'abc1', 'efg', 'm', 'mxyz', but 'efgh', 'p' aren't"`
	Wildcard       string   `long:"wildcard" value-name:"CHAR" default:"." description:"the character in a pattern that matches any single character"`
	Strict         bool     `long:"strict" description:"reject words and patterns with characters outside a-z"`
	ResultDBFile   string   `short:"d" long:"db" value-name:"Sqlite3-DB-FILE" default:"" description:"sqlite3 db file for storing search results. If exist, it will be removed and a new file is created"`
	ResultFile     string   `long:"result" value-name:"FILE" description:"store all search results, format is 'pattern\tmatched'"`
	Interval       int      `long:"interval" value-name:"Second" default:"5" description:"the time interval for printing stat(Second), 0 means only print at the end"`
	LogFile        string   `long:"log" value-name:"FILE" description:"log file, if not specified, log is put to console"`
	LogLevel       string   `long:"loglevel" value-name:"LEVEL" default:"info" description:"trace/debug/info/warn/error/critical"`
	MetricPrint    bool     `long:"metric" value-name:"BOOL" description:"print metric in log as json"`
	Version        bool     `short:"v" long:"version"`
}
