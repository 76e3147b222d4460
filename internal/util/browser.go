package util

import (
	"os/exec"
	"runtime"
)

// OpenBrowser 打开默认浏览器访问看板
// 失败不是致命问题，调用方提示用户手动访问即可
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "windows":
		// rundll32 在 Windows 7+ 上比 cmd /c start 稳定
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		if err := exec.Command("xdg-open", url).Start(); err == nil {
			return nil
		}
		// 无 xdg-open 的环境逐个尝试常见浏览器
		var lastErr error
		for _, browser := range []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"} {
			if err := exec.Command(browser, url).Start(); err == nil {
				return nil
			} else {
				lastErr = err
			}
		}
		return lastErr
	}
}
