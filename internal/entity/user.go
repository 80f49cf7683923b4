package entity

import "github.com/zoosum-lab/backend/pkg/enum"

type Region string

var (
	RegionSeoul     = enum.New(Region("SEOUL"))
	RegionBusan     = enum.New(Region("BUSAN"))
	RegionDaegu     = enum.New(Region("DAEGU"))
	RegionIncheon   = enum.New(Region("INCHEON"))
	RegionGwangju   = enum.New(Region("GWANGJU"))
	RegionDaejeon   = enum.New(Region("DAEJEON"))
	RegionUlsan     = enum.New(Region("ULSAN"))
	RegionSejong    = enum.New(Region("SEJONG"))
	RegionGyeonggi  = enum.New(Region("GYEONGGI"))
	RegionGangwon   = enum.New(Region("GANGWON"))
	RegionChungbuk  = enum.New(Region("CHUNGBUK"))
	RegionChungnam  = enum.New(Region("CHUNGNAM"))
	RegionJeonbuk   = enum.New(Region("JEONBUK"))
	RegionJeonnam   = enum.New(Region("JEONNAM"))
	RegionGyeongbuk = enum.New(Region("GYEONGBUK"))
	RegionGyeongnam = enum.New(Region("GYEONGNAM"))
	RegionJeju      = enum.New(Region("JEJU"))
)

type User struct {
	Base
	Nickname string `gorm:"unique"`
	Region   Region
	Address  string
}
