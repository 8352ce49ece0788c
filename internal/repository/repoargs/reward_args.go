package repoargs

import "github.com/fsdevblog/tg-store/internal/domain"

type AdCreate = domain.AdCreate

type LinkAdCreate = domain.LinkAdCreate

type LinkClickCreate = domain.LinkClickCreate

type ChannelCreate = domain.ChannelCreate

type ReferralStats = domain.ReferralStats
