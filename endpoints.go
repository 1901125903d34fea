package twocaptcha

// defaultBaseURL is the canonical service origin. Compatible deployments
// (rucaptcha et al.) are reachable by overriding ClientConfig.BaseURL.
const defaultBaseURL = "https://2captcha.com"

// Endpoint paths. The whole API lives behind three scripts: in.php accepts
// submissions, res.php serves results and every account operation, load.php
// reports server load as XML.
const (
	inPath   = "/in.php"
	resPath  = "/res.php"
	loadPath = "/load.php"
)

// res.php action parameters.
const (
	actionGet         = "get"
	actionGetWithCost = "get2"
	actionReportBad   = "reportbad"
	actionAddPingback = "add_pingback"
	actionGetPingback = "get_pingback"
	actionDelPingback = "del_pingback"
	actionGetBalance  = "getbalance"
)

// Response sentinels, reproduced bit-exact from the wire protocol.
const (
	okPrefix                = "OK|"
	sentinelNotReady        = "CAPCHA_NOT_READY"
	sentinelReportRecorded  = "OK_REPORT_RECORDED"
	sentinelPingbackAdded   = "OK_PINGBACK"
	sentinelPingbackDeleted = "OK_PINGBACK_DELETED"
)

// Operation names passed to the metrics hook.
const (
	opSubmit      = "submit"
	opResult      = "result"
	opBulkResults = "bulk_results"
	opReportBad   = "report_bad"
	opAddPingback = "add_pingback"
	opGetPingback = "get_pingback"
	opDelPingback = "del_pingback"
	opBalance     = "balance"
	opLoadStats   = "load_stats"
)
