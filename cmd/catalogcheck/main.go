package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/SlpAus/game-night-vote-backend/internal/game"
)

// catalogcheck 核对内置目录中的价格信息是否还与商店页面一致。
// 它抓取每个游戏的商店页并提取当前价格，打印与内置数据的差异。
// 这是一个离线维护工具，不属于服务器进程。

var (
	timeout  = flag.Duration("timeout", 10*time.Second, "单个页面的抓取超时")
	interval = flag.Duration("interval", 500*time.Millisecond, "两次抓取之间的间隔")
)

func main() {
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	checked, diffs, skipped := 0, 0, 0

	for _, g := range game.BuiltinCatalog() {
		if !strings.Contains(g.URL, "store.steampowered.com") {
			// 非Steam页面结构各异，跳过
			skipped++
			continue
		}

		livePrice, err := fetchSteamPrice(client, g.URL)
		if err != nil {
			fmt.Printf("[错误] %s: %v\n", g.Title, err)
			skipped++
			continue
		}
		checked++

		if !samePrice(g.Price, livePrice) {
			diffs++
			fmt.Printf("[差异] %s: 目录 %q, 商店 %q\n", g.Title, g.Price, livePrice)
		}

		time.Sleep(*interval)
	}

	fmt.Printf("核对完成: %d 项已检查, %d 项有差异, %d 项跳过。\n", checked, diffs, skipped)
}

// fetchSteamPrice 抓取一个Steam商店页并提取当前价格文本
func fetchSteamPrice(client *http.Client, pageURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	// 跳过年龄验证页
	req.Header.Set("Cookie", "birthtime=0; mature_content=1")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("商店页返回 %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// 打折时最终价格在 discount_final_price 中，否则在 game_purchase_price 中
	price := strings.TrimSpace(doc.Find(".game_area_purchase_game .discount_final_price").First().Text())
	if price == "" {
		price = strings.TrimSpace(doc.Find(".game_area_purchase_game .game_purchase_price").First().Text())
	}
	if price == "" {
		return "", fmt.Errorf("页面上找不到价格元素")
	}
	return price, nil
}

// samePrice 对价格做宽松比较："Free To Play" 和 "FREE" 视为相同
func samePrice(catalog, live string) bool {
	normalize := func(s string) string {
		s = strings.ToUpper(strings.TrimSpace(s))
		if strings.HasPrefix(s, "FREE") {
			return "FREE"
		}
		return s
	}
	return normalize(catalog) == normalize(live)
}
