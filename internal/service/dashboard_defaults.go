package service

import (
	"time"

	"homedock-be/internal/constant"
	"homedock-be/internal/entity"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

// DefaultDashboardConfig is the singleton row created on first boot or when
// the table is found empty.
func DefaultDashboardConfig() *entity.DashboardConfig {
	return &entity.DashboardConfig{
		Id:                   uuid.New(),
		BrandName:            "HomeDock",
		Language:             "ko",
		ServiceGridColumnsLg: 5,
		ShowBrand:            true,
		ShowTitle:            true,
		ShowDescription:      true,
		DockSeparatorEnabled: true,
		ThemeKey:             "homedock",
		Title:                "HomeDock 메인 대시보드",
		Description:          "홈서버에 숨겨진 모든 서비스를 하나의 런처로 정리하세요. 카테고리별 정렬, 포트/도메인 빠른 확인, 바로 실행까지 한 번에.",
		WeatherMode:          constant.WeatherModeAuto,
		SystemSummaryOrder:   append([]string(nil), constant.DefaultSystemSummaryOrder...),
		WeatherMetaOrder:     append([]string(nil), constant.DefaultWeatherMetaOrder...),
		CreatedAt:            time.Now(),
	}
}

type defaultService struct {
	Name         string
	URL          string
	Description  string
	Icon         string
	Target       string
	RequiresAuth bool
	IsFavorite   bool
	SortOrder    int
}

type defaultCategory struct {
	Name      string
	Color     string
	SortOrder int
	Services  []defaultService
}

var defaultCategories = []defaultCategory{
	{
		Name:      "미디어 존",
		Color:     "#7ef5d2",
		SortOrder: 0,
		Services: []defaultService{
			{Name: "Plex", URL: "http://192.168.1.2:32400", Description: "라이브러리 스트리밍 허브", Icon: "tv", IsFavorite: true, SortOrder: 0},
			{Name: "Jellyfin", URL: "http://192.168.1.2:8096", Description: "자가 호스팅 미디어 센터", Icon: "play", SortOrder: 1},
			{Name: "Emby", URL: "http://192.168.1.2:8097", Description: "멀티미디어 관리 허브", Icon: "film", SortOrder: 2},
			{Name: "Navidrome", URL: "http://192.168.1.2:4533", Description: "음악 스트리밍", Icon: "music", SortOrder: 3},
			{Name: "PhotoPrism", URL: "https://photos.homedock.local", Description: "사진 아카이브", Icon: "camera", SortOrder: 4},
		},
	},
	{
		Name:      "인프라 컨트롤",
		Color:     "#ffb86b",
		SortOrder: 1,
		Services: []defaultService{
			{Name: "Portainer", URL: "https://portainer.homedock.local", Description: "도커 스택 관리", Icon: "containers", IsFavorite: true, SortOrder: 0},
			{Name: "Grafana", URL: "https://grafana.homedock.local", Description: "메트릭과 대시보드", Icon: "chart", SortOrder: 1},
			{Name: "Prometheus", URL: "http://192.168.1.2:9090", Description: "메트릭 수집", Icon: "activity", SortOrder: 2},
			{Name: "Traefik", URL: "https://traefik.homedock.local", Description: "리버스 프록시 라우팅", Icon: "compass", SortOrder: 3},
			{Name: "Netdata", URL: "http://192.168.1.2:19999", Description: "실시간 시스템 모니터링", Icon: "monitor", SortOrder: 4},
		},
	},
	{
		Name:      "스토리지 볼트",
		Color:     "#8ab6ff",
		SortOrder: 2,
		Services: []defaultService{
			{Name: "Syncthing", URL: "http://192.168.1.2:8384", Description: "파일 동기화 허브", Icon: "sync", SortOrder: 0},
			{Name: "MinIO", URL: "https://minio.homedock.local", Description: "S3 호환 오브젝트 스토리지", Icon: "database", SortOrder: 1},
			{Name: "Nextcloud", URL: "https://cloud.homedock.local", Description: "개인 클라우드", Icon: "cloud", SortOrder: 2},
			{Name: "File Browser", URL: "http://192.168.1.2:8088", Description: "웹 파일 관리자", Icon: "folder", IsFavorite: true, SortOrder: 3},
			{Name: "Paperless", URL: "https://docs.homedock.local", Description: "문서 아카이빙", Icon: "docs", SortOrder: 4},
		},
	},
	{
		Name:      "툴박스",
		Color:     "#ff8bcf",
		SortOrder: 3,
		Services: []defaultService{
			{Name: "n8n", URL: "https://automate.homedock.local", Description: "워크플로 자동화", Icon: "workflow", SortOrder: 0},
			{Name: "Uptime Kuma", URL: "http://192.168.1.2:3001", Description: "서비스 상태 모니터", Icon: "heartbeat", SortOrder: 1},
			{Name: "Gitea", URL: "https://git.homedock.local", Description: "경량 Git 서버", Icon: "git", SortOrder: 2},
			{Name: "Vaultwarden", URL: "https://vault.homedock.local", Description: "패스워드 금고", Icon: "shield", SortOrder: 3},
			{Name: "Homepage", URL: "http://192.168.1.2:3000", Description: "홈서버 런처 대안", Icon: "home", SortOrder: 4},
		},
	},
}
