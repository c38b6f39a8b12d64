package service

import "time"

// 地球上最早与最晚的 UTC 偏移：基里巴斯 UTC+14 与 UTC-12。
// 只要其中之一处于周日，平台即开放。
var (
    zoneEast = time.FixedZone("UTC+14", 14*60*60)
    zoneWest = time.FixedZone("UTC-12", -12*60*60)
)

// Clock 注入时钟，测试时替换
type Clock func() time.Time

// SundayGate 周开放窗口。无状态，一切都是墙钟时间的纯函数。
type SundayGate struct {
    now Clock
}

func NewSundayGate(clock Clock) *SundayGate {
    if clock == nil {
        clock = time.Now
    }
    return &SundayGate{now: clock}
}

// Now 返回注入时钟的当前时刻，发帖时间戳统一取这里
func (g *SundayGate) Now() time.Time { return g.now() }

// IsOpen 判断此刻地球上任意 UTC 偏移是否处于周日。
// 两个极端时区的周日在实时轴上是每周两段不相交的区间，
// 中间的偏移不单独检查。
func (g *SundayGate) IsOpen() bool {
    now := g.now()
    return now.In(zoneEast).Weekday() == time.Sunday ||
        now.In(zoneWest).Weekday() == time.Sunday
}

// Countdown 距下次开放剩余的时间，按天/时/分截断。
// 不会自动递减，取值瞬间定格。
type Countdown struct {
    Days    int `json:"days"`
    Hours   int `json:"hours"`
    Minutes int `json:"minutes"`
}

func (c Countdown) IsZero() bool { return c.Days == 0 && c.Hours == 0 && c.Minutes == 0 }

// UntilNextOpen 距 UTC+14 时区下一个周日零点还有多久；当前开放则为零
func (g *SundayGate) UntilNextOpen() Countdown {
    if g.IsOpen() {
        return Countdown{}
    }
    now := g.now().In(zoneEast)
    midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, zoneEast)
    // 关闭状态下 UTC+14 一定不是周日，days 取值 1..6
    days := 7 - int(now.Weekday())
    next := midnight.AddDate(0, 0, days)

    mins := int(next.Sub(now) / time.Minute)
    return Countdown{
        Days:    mins / (24 * 60),
        Hours:   (mins / 60) % 24,
        Minutes: mins % 60,
    }
}

// WindowStart 本周（或最近一次开始的）窗口起点：
// UTC+14 时区最近一个周日的零点，当天是周日则取当天零点。
func (g *SundayGate) WindowStart() time.Time {
    now := g.now().In(zoneEast)
    midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, zoneEast)
    return midnight.AddDate(0, 0, -int(now.Weekday()))
}
