package zhconv

// t2s maps traditional Chinese characters to simplified forms. The table
// covers the high-frequency traditional characters seen in ASR output;
// characters shared between the two scripts are intentionally absent.
var t2s = map[rune]rune{
	'萬': '万', '與': '与', '專': '专', '業': '业', '叢': '丛',
	'東': '东', '絲': '丝', '丟': '丢', '兩': '两', '嚴': '严',
	'喪': '丧', '個': '个', '豐': '丰', '臨': '临', '為': '为',
	'麗': '丽', '舉': '举', '義': '义', '烏': '乌', '樂': '乐',
	'喬': '乔', '習': '习', '鄉': '乡', '書': '书', '買': '买',
	'亂': '乱', '爭': '争', '虧': '亏', '雲': '云', '亙': '亘',
	'亞': '亚', '產': '产', '畝': '亩', '親': '亲', '億': '亿',
	'僅': '仅', '從': '从', '倉': '仓', '儀': '仪', '們': '们',
	'價': '价', '眾': '众', '優': '优', '夥': '伙', '會': '会',
	'傘': '伞', '偉': '伟', '傳': '传', '傷': '伤', '倫': '伦',
	'佈': '布', '體': '体', '傭': '佣', '俠': '侠', '侶': '侣',
	'僥': '侥', '偵': '侦', '側': '侧', '僑': '侨', '儕': '侪',
	'儂': '侬', '倆': '俩', '儉': '俭', '債': '债', '傾': '倾',
	'僕': '仆', '偽': '伪', '僞': '伪', '償': '偿', '儲': '储',
	'兒': '儿', '兌': '兑', '黨': '党', '蘭': '兰', '關': '关',
	'興': '兴', '養': '养', '獸': '兽', '內': '内', '岡': '冈',
	'冊': '册', '寫': '写', '軍': '军', '農': '农', '馮': '冯',
	'衝': '冲', '決': '决', '況': '况', '凍': '冻', '淨': '净',
	'涼': '凉', '減': '减', '湊': '凑', '凜': '凛', '幾': '几',
	'鳳': '凤', '憑': '凭', '凱': '凯', '擊': '击', '鑿': '凿',
	'劃': '划', '劉': '刘', '則': '则', '剛': '刚', '創': '创',
	'刪': '删', '別': '别', '劊': '刽', '劑': '剂', '劍': '剑',
	'剝': '剥', '劇': '剧', '勸': '劝', '辦': '办', '務': '务',
	'動': '动', '勵': '励', '勁': '劲', '勞': '劳', '勢': '势',
	'勳': '勋', '勻': '匀', '匯': '汇', '匱': '匮', '區': '区',
	'醫': '医', '華': '华', '協': '协', '單': '单', '賣': '卖',
	'盧': '卢', '鹵': '卤', '臥': '卧', '衛': '卫', '卻': '却',
	'廠': '厂', '廳': '厅', '歷': '历', '厲': '厉', '壓': '压',
	'厭': '厌', '廁': '厕', '縣': '县', '參': '参', '雙': '双',
	'發': '发', '變': '变', '敘': '叙', '疊': '叠', '葉': '叶',
	'號': '号', '嘆': '叹', '嘰': '叽', '後': '后', '嚇': '吓',
	'呂': '吕', '嗎': '吗', '噸': '吨', '聽': '听', '啟': '启',
	'吳': '吴', '嘸': '呒', '囈': '呓', '嘔': '呕', '嚦': '呖',
	'唄': '呗', '員': '员', '咼': '呙', '嗆': '呛', '嗚': '呜',
	'詠': '咏', '嚨': '咙', '嚀': '咛', '響': '响', '啞': '哑',
	'噠': '哒', '嘵': '哓', '嗶': '哔', '噦': '哕', '嘩': '哗',
	'噲': '哙', '嚕': '噜', '顆': '颗', '問': '问', '啢': '唡',
	'唚': '吣', '鳴': '鸣', '嗩': '唢', '嘖': '啧', '嗇': '啬',
	'嘮': '唠', '嗊': '唝', '嘍': '唠', '圇': '囵', '國': '国',
	'圖': '图', '圓': '圆', '園': '园', '團': '团', '圍': '围',
	'場': '场', '壞': '坏', '塊': '块', '堅': '坚', '壇': '坛',
	'壢': '坜', '壩': '坝', '塢': '坞', '墳': '坟', '墜': '坠',
	'壟': '垄', '壚': '垆', '壘': '垒', '墾': '垦', '堊': '垩',
	'墊': '垫', '埡': '垭', '塒': '埘', '塤': '埙', '堝': '埚',
	'塹': '堑', '墮': '堕', '壯': '壮', '聲': '声', '殼': '壳',
	'壺': '壶', '處': '处', '備': '备', '復': '复', '複': '复',
	'夠': '够', '頭': '头', '誇': '夸', '夾': '夹', '奪': '夺',
	'奩': '奁', '奐': '奂', '奮': '奋', '獎': '奖', '奧': '奥',
	'妝': '妆', '婦': '妇', '媽': '妈', '嫵': '妩', '嫗': '妪',
	'媯': '妫', '姍': '姗', '姦': '奸', '娛': '娱', '婁': '娄',
	'嬈': '娆', '嬌': '娇', '孌': '娈', '婭': '娅', '嬡': '嫒',
	'嬰': '婴', '嬋': '婵', '嬸': '婶', '媼': '媪', '嬤': '嬷',
	'孫': '孙', '學': '学', '孿': '孪', '寧': '宁', '寶': '宝',
	'實': '实', '寵': '宠', '審': '审', '憲': '宪', '宮': '宫',
	'寬': '宽', '賓': '宾', '寢': '寝', '對': '对', '尋': '寻',
	'導': '导', '壽': '寿', '將': '将', '爾': '尔', '塵': '尘',
	'嘗': '尝', '層': '层', '屆': '届', '屍': '尸', '屬': '属',
	'屢': '屡', '屨': '屦', '嶼': '屿', '歲': '岁', '豈': '岂',
	'嶇': '岖', '崗': '岗', '峴': '岘', '嵐': '岚', '島': '岛',
	'嶺': '岭', '嶽': '岳', '崠': '岽', '巔': '巅', '鞏': '巩',
	'巰': '巯', '幣': '币', '帥': '帅', '師': '师', '幃': '帏',
	'帳': '帐', '簾': '帘', '幟': '帜', '帶': '带', '幀': '帧',
	'幫': '帮', '幬': '帱', '幹': '干', '並': '并', '廣': '广',
	'莊': '庄', '慶': '庆', '廬': '庐', '廡': '庑', '庫': '库',
	'應': '应', '廟': '庙', '龐': '庞', '廢': '废', '開': '开',
	'異': '异', '棄': '弃', '張': '张', '彌': '弥', '弳': '弪',
	'彎': '弯', '彈': '弹', '強': '强', '歸': '归', '當': '当',
	'錄': '录', '彥': '彦', '徹': '彻', '徑': '径', '徠': '徕',
	'禦': '御', '憶': '忆', '懺': '忏', '憂': '忧', '愾': '忾',
	'懷': '怀', '態': '态', '慫': '怂', '憮': '怃', '慪': '怄',
	'悵': '怅', '愴': '怆', '憐': '怜', '總': '总', '懟': '怼',
	'懌': '怿', '戀': '恋', '恆': '恒', '懇': '恳', '惡': '恶',
	'慟': '恸', '懨': '恹', '愷': '恺', '惻': '恻', '惱': '恼',
	'惲': '恽', '悅': '悦', '愨': '悫', '懸': '悬', '慳': '悭',
	'憫': '悯', '驚': '惊', '懼': '惧', '慘': '惨', '懲': '惩',
	'憊': '惫', '愜': '惬', '慣': '惯', '慍': '愠', '憤': '愤',
	'憒': '愦', '願': '愿', '懾': '慑', '憖': '慭', '戇': '戆',
	'戔': '戋', '戲': '戏', '戰': '战', '戶': '户', '紮': '扎',
	'撲': '扑', '扞': '捍', '執': '执', '擴': '扩', '捫': '扪',
	'掃': '扫', '揚': '扬', '擾': '扰', '撫': '抚', '拋': '抛',
	'摶': '抟', '摳': '抠', '掄': '抡', '搶': '抢', '護': '护',
	'報': '报', '擔': '担', '擬': '拟', '攏': '拢', '揀': '拣',
	'擁': '拥', '攔': '拦', '擰': '拧', '撥': '拨', '擇': '择',
	'掛': '挂', '摯': '挚', '攣': '挛', '挾': '挟', '撓': '挠',
	'擋': '挡', '撟': '挢', '揮': '挥', '撈': '捞', '損': '损',
	'撿': '捡', '換': '换', '搗': '捣', '捨': '舍', '據': '据',
	'擄': '掳', '摑': '掴', '擲': '掷', '撣': '掸', '摻': '掺',
	'摜': '掼', '攬': '揽', '撳': '揿', '攙': '搀', '擱': '搁',
	'摟': '搂', '攪': '搅', '攜': '携', '攝': '摄', '攄': '摅',
	'擺': '摆', '搖': '摇', '擯': '摈', '攤': '摊', '撐': '撑',
	'攢': '攒', '敵': '敌', '敗': '败', '數': '数', '齊': '齐',
	'斂': '敛', '斃': '毙', '齋': '斋', '斕': '斓', '鬥': '斗',
	'斬': '斩', '斷': '断', '無': '无', '舊': '旧', '時': '时',
	'曠': '旷', '暘': '旸', '昇': '升', '曇': '昙', '晝': '昼',
	'顯': '显', '晉': '晋', '曬': '晒', '曉': '晓', '曄': '晔',
	'暈': '晕', '暉': '晖', '暫': '暂', '曖': '暧', '術': '术',
	'樸': '朴', '機': '机', '殺': '杀', '雜': '杂', '權': '权',
	'條': '条', '來': '来', '楊': '杨', '榪': '杩', '傑': '杰',
	'極': '极', '構': '构', '樅': '枞', '樞': '枢', '棗': '枣',
	'櫪': '枥', '梘': '枧', '棖': '枨', '槍': '枪', '楓': '枫',
	'梟': '枭', '檸': '柠', '檉': '柽', '梔': '栀', '柵': '栅',
	'標': '标', '棧': '栈', '櫛': '栉', '櫳': '栊', '棟': '栋',
	'櫨': '栌', '樹': '树', '欄': '栏', '棲': '栖', '樣': '样',
	'檔': '档', '橋': '桥', '樺': '桦', '檜': '桧', '槳': '桨',
	'樁': '桩', '夢': '梦', '檢': '检', '棬': '桊', '檣': '樯',
	'檻': '槛', '櫃': '柜', '欞': '棂', '槨': '椁', '櫝': '椟',
	'槧': '椠', '欖': '榄', '櫬': '榇', '櫚': '榈', '櫸': '榉',
	'檳': '槟', '櫧': '槠', '橫': '横', '檁': '檩', '欽': '钦',
	'歡': '欢', '歟': '欤', '歐': '欧', '殲': '歼', '歿': '殁',
	'殤': '殇', '殘': '残', '殞': '殒', '殮': '殓', '殯': '殡',
	'毆': '殴', '毀': '毁', '轂': '毂', '畢': '毕', '氈': '毡',
	'氣': '气', '氫': '氢', '氬': '氩', '漢': '汉', '汙': '污',
	'湯': '汤', '洶': '汹', '溝': '沟', '沒': '没', '灃': '沣',
	'滄': '沧', '溈': '沩', '滬': '沪', '濘': '泞', '淚': '泪',
	'澩': '泶', '瀧': '泷', '瀘': '泸', '濼': '泺', '瀉': '泻',
	'潑': '泼', '澤': '泽', '涇': '泾', '潔': '洁', '灑': '洒',
	'窪': '洼', '浹': '浃', '淺': '浅', '漿': '浆', '澆': '浇',
	'湞': '浈', '濁': '浊', '測': '测', '澮': '浍', '濟': '济',
	'瀏': '浏', '滸': '浒', '渾': '浑', '濃': '浓', '潯': '浔',
	'濤': '涛', '澇': '涝', '淶': '涞', '漣': '涟', '潿': '涠',
	'渦': '涡', '渙': '涣', '滌': '涤', '潤': '润', '澗': '涧',
	'漲': '涨', '澀': '涩', '淵': '渊', '淥': '渌', '漬': '渍',
	'瀆': '渎', '漸': '渐', '澠': '渑', '漁': '渔', '瀋': '沈',
	'滲': '渗', '溫': '温', '遊': '游', '灣': '湾', '濕': '湿',
	'潰': '溃', '濺': '溅', '漵': '溆', '灕': '漓', '滯': '滞',
	'滷': '卤', '滾': '滚', '滿': '满', '濾': '滤', '濫': '滥',
	'灤': '滦', '濱': '滨', '灘': '滩', '澦': '滪', '瀠': '潆',
	'瀟': '潇', '瀲': '潋', '濰': '潍', '潛': '潜', '瀦': '潴',
	'瀾': '澜', '瀨': '濑', '瀕': '濒', '灝': '灏', '滅': '灭',
	'燈': '灯', '靈': '灵', '災': '灾', '燦': '灿', '煬': '炀',
	'爐': '炉', '燉': '炖', '煒': '炜', '熗': '炝', '點': '点',
	'煉': '炼', '熾': '炽', '爍': '烁', '爛': '烂', '烴': '烃',
	'燭': '烛', '煙': '烟', '煩': '烦', '燒': '烧', '燁': '烨',
	'燴': '烩', '燙': '烫', '燼': '烬', '熱': '热', '煥': '焕',
	'燜': '焖', '燾': '焘', '愛': '爱', '爺': '爷', '牘': '牍',
	'犛': '牦', '牽': '牵', '犧': '牺', '犢': '犊', '狀': '状',
	'獷': '犷', '獁': '犸', '猶': '犹', '狽': '狈', '獅': '狮',
	'獨': '独', '狹': '狭', '獪': '狯', '猙': '狰', '獄': '狱',
	'猻': '狲', '獫': '猃', '獵': '猎', '獼': '猕', '玀': '猡',
	'豬': '猪', '貓': '猫', '獻': '献', '獺': '獭', '璣': '玑',
	'瑪': '玛', '瑋': '玮', '環': '环', '現': '现', '瑲': '玱',
	'璽': '玺', '瑉': '珉', '琺': '珐', '瓏': '珑', '璫': '珰',
	'琿': '珲', '璉': '琏', '瑣': '琐', '瓊': '琼', '瑤': '瑶',
	'璦': '瑷', '瓔': '璎', '瓚': '瓒', '甕': '瓮', '甦': '苏',
	'電': '电', '畫': '画', '暢': '畅', '疇': '畴', '癤': '疖',
	'療': '疗', '瘧': '疟', '癘': '疠', '瘍': '疡', '鬁': '疬',
	'瘡': '疮', '瘋': '疯', '皰': '疱', '癰': '痈', '痙': '痉',
	'癢': '痒', '瘂': '痖', '癆': '痨', '瘓': '痪', '癇': '痫',
	'痺': '痹', '癱': '瘫', '癮': '瘾', '癬': '癣', '皚': '皑',
	'皺': '皱', '盞': '盏', '鹽': '盐', '監': '监', '蓋': '盖',
	'盜': '盗', '盤': '盘', '瞘': '眍', '矇': '蒙', '睜': '睁',
	'睞': '睐', '瞼': '睑', '矚': '瞩', '矯': '矫', '磯': '矶',
	'礬': '矾', '礦': '矿', '碭': '砀', '碼': '码', '磚': '砖',
	'硨': '砗', '硯': '砚', '碸': '砜', '礪': '砺', '礱': '砻',
	'礫': '砾', '礎': '础', '硜': '硁', '碩': '硕', '硤': '硖',
	'磽': '硗', '磣': '碜', '確': '确', '鹼': '碱', '礙': '碍',
	'磧': '碛', '禮': '礼', '禕': '祎', '禰': '祢', '禎': '祯',
	'禱': '祷', '禍': '祸', '稟': '禀', '祿': '禄', '禪': '禅',
	'離': '离', '禿': '秃', '稈': '秆', '種': '种', '積': '积',
	'稱': '称', '穢': '秽', '穠': '秾', '穩': '稳', '穡': '穑',
	'窮': '穷', '竊': '窃', '竅': '窍', '窯': '窑', '竄': '窜',
	'窩': '窝', '窺': '窥', '竇': '窦', '窶': '窭', '豎': '竖',
	'競': '竞', '篤': '笃', '筍': '笋', '筆': '笔', '筧': '笕',
	'箋': '笺', '籠': '笼', '籩': '笾', '築': '筑', '篩': '筛',
	'簹': '筜', '箏': '筝', '籌': '筹', '簽': '签', '簡': '简',
	'籙': '箓', '簀': '箦', '篋': '箧', '籜': '箨', '籮': '箩',
	'簞': '箪', '簫': '箫', '簣': '篑', '簍': '篓', '籃': '篮',
	'籬': '篱', '籪': '簖', '籟': '籁', '籲': '吁', '類': '类',
	'秈': '籼', '糴': '籴', '糶': '粜', '糲': '粝', '粵': '粤',
	'糞': '粪', '糧': '粮', '糝': '糁', '餱': '糇', '緊': '紧',
	'縶': '絷', '糸': '纟', '糾': '纠', '紆': '纡', '紅': '红',
	'紂': '纣', '纖': '纤', '紇': '纥', '約': '约', '級': '级',
	'紈': '纨', '纊': '纩', '紀': '纪', '紉': '纫', '緯': '纬',
	'紜': '纭', '純': '纯', '紕': '纰', '紗': '纱', '綱': '纲',
	'納': '纳', '縱': '纵', '綸': '纶', '紛': '纷', '紙': '纸',
	'紋': '纹', '紡': '纺', '紵': '纻', '紐': '纽', '線': '线',
	'紺': '绀', '絏': '绁', '紱': '绂', '練': '练', '組': '组',
	'紳': '绅', '細': '细', '織': '织', '終': '终', '縐': '绉',
	'絆': '绊', '紼': '绋', '絀': '绌', '紹': '绍', '繹': '绎',
	'經': '经', '紿': '绐', '綁': '绑', '絨': '绒', '結': '结',
	'繞': '绕', '絰': '绖', '絎': '绗', '繪': '绘', '給': '给',
	'絢': '绚', '絳': '绛', '絡': '络', '絕': '绝', '絞': '绞',
	'統': '统', '綆': '绠', '綃': '绡', '絹': '绢', '繡': '绣',
	'綏': '绥', '繼': '继', '綈': '绨', '績': '绩', '緒': '绪',
	'綾': '绫', '續': '续', '綺': '绮', '緋': '绯', '綽': '绰',
	'緄': '绲', '繩': '绳', '維': '维', '綿': '绵', '綬': '绶',
	'繃': '绷', '綢': '绸', '綹': '绺', '綣': '绻', '綜': '综',
	'綻': '绽', '綰': '绾', '綠': '绿', '綴': '缀', '緇': '缁',
	'緙': '缂', '緗': '缃', '緘': '缄', '緬': '缅', '纜': '缆',
	'緹': '缇', '緲': '缈', '緝': '缉', '縕': '缊', '繢': '缋',
	'緦': '缌', '綞': '缍', '緞': '缎', '緶': '缏', '緱': '缑',
	'縋': '缒', '緩': '缓', '締': '缔', '縷': '缕', '編': '编',
	'緡': '缗', '緣': '缘', '縉': '缙', '縛': '缚', '縟': '缛',
	'縝': '缜', '縫': '缝', '縞': '缟', '纏': '缠', '縭': '缡',
	'縊': '缢', '縑': '缣', '繽': '缤', '縹': '缥', '縲': '缧',
	'纓': '缨', '縮': '缩', '繆': '缪', '繅': '缫', '纈': '缬',
	'繚': '缭', '繕': '缮', '繒': '缯', '繾': '缱', '繰': '缲',
	'繳': '缴', '纘': '缵', '罌': '罂', '網': '网', '羅': '罗',
	'罰': '罚', '罷': '罢', '羆': '罴', '羈': '羁', '羥': '羟',
	'羨': '羡', '翹': '翘', '耮': '耢', '耬': '耧', '聳': '耸',
	'恥': '耻', '聶': '聂', '聾': '聋', '職': '职', '聹': '聍',
	'聯': '联', '聰': '聪', '肅': '肃', '腸': '肠', '膚': '肤',
	'膁': '肷', '腎': '肾', '腫': '肿', '脹': '胀', '脅': '胁',
	'膽': '胆', '勝': '胜', '朧': '胧', '腖': '胨', '臚': '胪',
	'脛': '胫', '膠': '胶', '脈': '脉', '膾': '脍', '髒': '脏',
	'臍': '脐', '腦': '脑', '膿': '脓', '臠': '脔', '腳': '脚',
	'脫': '脱', '腡': '脶', '臉': '脸', '臘': '腊', '醃': '腌',
	'膩': '腻', '靦': '腼', '膃': '腽', '騰': '腾', '臏': '膑',
	'臢': '臜', '輿': '舆', '艤': '舣', '艦': '舰', '艙': '舱',
	'艫': '舻', '艱': '艰', '豔': '艳', '艸': '艹', '藝': '艺',
	'節': '节', '羋': '芈', '薌': '芗', '蕪': '芜', '蘆': '芦',
	'蓯': '苁', '葦': '苇', '藶': '苈', '莧': '苋', '萇': '苌',
	'蒼': '苍', '苧': '苎', '蘇': '苏', '檾': '苘', '蘋': '苹',
	'莖': '茎', '蘢': '茏', '蔦': '茑', '塋': '茔', '煢': '茕',
	'繭': '茧', '荊': '荆', '薦': '荐', '薘': '荙', '莢': '荚',
	'蕘': '荛', '蓽': '荜', '蕎': '荞', '薈': '荟', '薺': '荠',
	'蕩': '荡', '榮': '荣', '葷': '荤', '滎': '荥', '犖': '荦',
	'熒': '荧', '蕁': '荨', '藎': '荩', '蓀': '荪', '蔭': '荫',
	'蕒': '荬', '葒': '荭', '葤': '荮', '藥': '药', '蒞': '莅',
	'蓧': '莜', '萊': '莱', '蓮': '莲', '蒔': '莳', '萵': '莴',
	'薟': '莶', '獲': '获', '蕕': '莸', '瑩': '莹', '鶯': '莺',
	'蓴': '莼', '蘀': '萚', '蘿': '萝', '螢': '萤', '營': '营',
	'縈': '萦', '蕭': '萧', '薩': '萨', '蔥': '葱', '蕆': '蒇',
	'蕢': '蒉', '蔣': '蒋', '蔞': '蒌', '藍': '蓝', '薊': '蓟',
	'蘺': '蓠', '蕷': '蓣', '鎣': '蓥', '驀': '蓦', '薔': '蔷',
	'蘞': '蔹', '藺': '蔺', '藹': '蔼', '蘄': '蕲', '蘊': '蕴',
	'藪': '薮', '蘚': '藓', '虜': '虏', '慮': '虑', '虛': '虚',
	'蟲': '虫', '虯': '虬', '蟣': '虮', '雖': '虽', '蝦': '虾',
	'蠆': '虿', '蝕': '蚀', '蟻': '蚁', '螞': '蚂', '蠶': '蚕',
	'蠔': '蚝', '蜆': '蚬', '蠱': '蛊', '蠣': '蛎', '蟶': '蛏',
	'蠻': '蛮', '蟄': '蛰', '蛺': '蛱', '蟯': '蛲', '螄': '蛳',
	'蠐': '蛴', '蛻': '蜕', '蝸': '蜗', '蠟': '蜡', '蠅': '蝇',
	'蟈': '蝈', '蟬': '蝉', '蝟': '猬', '螻': '蝼', '蟎': '螨',
	'釁': '衅', '銜': '衔', '補': '补', '襯': '衬', '袞': '衮',
	'襖': '袄', '嫋': '袅', '褘': '袆', '襪': '袜', '襲': '袭',
	'襏': '袯', '裝': '装', '襠': '裆', '褳': '裢', '襝': '裣',
	'褲': '裤', '褸': '褛', '襤': '褴', '見': '见', '觀': '观',
	'覎': '觃', '規': '规', '覓': '觅', '視': '视', '覘': '觇',
	'覽': '览', '覺': '觉', '覬': '觊', '覡': '觋', '覿': '觌',
	'覥': '觍', '覦': '觎', '覯': '觏', '覲': '觐', '覷': '觑',
	'觴': '觞', '觸': '触', '觶': '觯', '訁': '讠', '計': '计',
	'訂': '订', '訃': '讣', '認': '认', '譏': '讥', '訐': '讦',
	'訌': '讧', '討': '讨', '讓': '让', '訕': '讪', '訖': '讫',
	'訓': '训', '議': '议', '訊': '讯', '記': '记', '講': '讲',
	'諱': '讳', '謳': '讴', '詎': '讵', '訝': '讶', '訥': '讷',
	'許': '许', '訛': '讹', '論': '论', '訩': '讻', '訟': '讼',
	'諷': '讽', '設': '设', '訪': '访', '訣': '诀', '證': '证',
	'詁': '诂', '訶': '诃', '評': '评', '詛': '诅', '識': '识',
	'詗': '诇', '詐': '诈', '訴': '诉', '診': '诊', '詆': '诋',
	'謅': '诌', '詞': '词', '詘': '诎', '詔': '诏', '詖': '诐',
	'譯': '译', '詒': '诒', '誆': '诓', '誄': '诔', '試': '试',
	'詿': '诖', '詩': '诗', '詰': '诘', '詼': '诙', '誠': '诚',
	'誅': '诛', '詵': '诜', '話': '话', '誕': '诞', '詬': '诟',
	'詮': '诠', '詭': '诡', '詢': '询', '詣': '诣', '諍': '诤',
	'該': '该', '詳': '详', '詫': '诧', '諢': '诨', '詡': '诩',
	'誡': '诫', '誣': '诬', '語': '语', '誚': '诮', '誤': '误',
	'誥': '诰', '誘': '诱', '誨': '诲', '誑': '诳', '說': '说',
	'誦': '诵', '誒': '诶', '請': '请', '諸': '诸', '諏': '诹',
	'諾': '诺', '讀': '读', '諑': '诼', '誹': '诽', '課': '课',
	'諉': '诿', '諛': '谀', '誰': '谁', '諗': '谂', '調': '调',
	'諂': '谄', '諒': '谅', '諄': '谆', '談': '谈', '誼': '谊',
	'謀': '谋', '諶': '谌', '諜': '谍', '謊': '谎', '諫': '谏',
	'諧': '谐', '謔': '谑', '謁': '谒', '謂': '谓', '諤': '谔',
	'諭': '谕', '諼': '谖', '讒': '谗', '諮': '谘', '諳': '谙',
	'諺': '谚', '諦': '谛', '謎': '谜', '諞': '谝', '諝': '谞',
	'謨': '谟', '讜': '谠', '謖': '谡', '謝': '谢', '謠': '谣',
	'謗': '谤', '諡': '谥', '謙': '谦', '謐': '谧', '謹': '谨',
	'謾': '谩', '謫': '谪', '謬': '谬', '譚': '谭', '譖': '谮',
	'譙': '谯', '譜': '谱', '譎': '谲', '讞': '谳', '譴': '谴',
	'譽': '誉', '譫': '谵', '讖': '谶', '豶': '豮', '貝': '贝',
	'貞': '贞', '負': '负', '貟': '贠', '貢': '贡', '財': '财',
	'責': '责', '賢': '贤', '賬': '账', '貨': '货', '質': '质',
	'販': '贩', '貪': '贪', '貧': '贫', '貶': '贬', '購': '购',
	'貯': '贮', '貫': '贯', '貳': '贰', '賤': '贱', '賁': '贲',
	'貰': '贳', '貼': '贴', '貴': '贵', '貺': '贶', '貸': '贷',
	'貿': '贸', '費': '费', '賀': '贺', '貽': '贻', '賊': '贼',
	'贄': '贽', '賈': '贾', '賄': '贿', '貲': '赀', '賃': '赁',
	'賂': '赂', '贓': '赃', '資': '资', '賅': '赅', '贐': '赆',
	'賕': '赇', '賑': '赈', '賚': '赉', '賒': '赊', '賦': '赋',
	'賭': '赌', '贖': '赎', '賞': '赏', '賜': '赐', '贔': '赑',
	'賠': '赔', '賧': '赕', '賴': '赖', '賵': '赗', '贅': '赘',
	'賻': '赙', '賺': '赚', '賽': '赛', '賾': '赜', '贗': '赝',
	'贊': '赞', '贈': '赠', '贍': '赡', '贏': '赢', '贛': '赣',
	'趙': '赵', '趕': '赶', '趨': '趋', '趲': '趱', '躉': '趸',
	'躍': '跃', '蹌': '跄', '蹺': '跷', '蹕': '跸', '躚': '跹',
	'躋': '跻', '踐': '践', '蹤': '踪', '躒': '跞', '踴': '踊',
	'躂': '跶', '躊': '踌', '躓': '踬', '躑': '踯', '躡': '蹑',
	'蹣': '蹒', '躕': '蹰', '躥': '蹿', '躪': '躏', '躦': '躜',
	'軀': '躯', '車': '车', '軋': '轧', '軌': '轨', '軑': '轪',
	'軒': '轩', '軔': '轫', '轉': '转', '軛': '轭', '輪': '轮',
	'軟': '软', '轟': '轰', '軲': '轱', '軻': '轲', '轎': '轿',
	'軸': '轴', '軹': '轵', '軼': '轶', '軤': '轷', '軫': '轸',
	'轢': '轹', '軺': '轺', '輕': '轻', '軾': '轼', '載': '载',
	'輊': '轾', '轔': '辚', '輇': '辁', '輅': '辂', '較': '较',
	'輒': '辄', '輔': '辅', '輛': '辆', '輦': '辇', '輩': '辈',
	'輝': '辉', '輥': '辊', '輞': '辋', '輟': '辍', '輜': '辎',
	'輳': '辏', '輻': '辐', '輯': '辑', '輸': '输', '轡': '辔',
	'轅': '辕', '轄': '辖', '輾': '辗', '轆': '辘', '轍': '辙',
	'辭': '辞', '辯': '辩', '辮': '辫', '邊': '边', '遼': '辽',
	'達': '达', '遷': '迁', '過': '过', '邁': '迈', '運': '运',
	'還': '还', '這': '这', '進': '进', '遠': '远', '違': '违',
	'連': '连', '遲': '迟', '邇': '迩', '逕': '迳', '跡': '迹',
	'適': '适', '選': '选', '遜': '逊', '遞': '递', '邏': '逻',
	'遺': '遗', '遙': '遥', '鄧': '邓', '鄺': '邝', '鄔': '邬',
	'郵': '邮', '鄒': '邹', '鄴': '邺', '鄰': '邻', '鬱': '郁',
	'郟': '郏', '鄶': '郐', '鄭': '郑', '鄆': '郓', '酈': '郦',
	'鄲': '郸', '醞': '酝', '醱': '酦', '醬': '酱', '釅': '酽',
	'釃': '酾', '釀': '酿', '釋': '释', '裏': '里', '鑒': '鉴',
	'鑾': '銮', '鏨': '錾', '釒': '钅', '釓': '钆', '釔': '钇',
	'針': '针', '釘': '钉', '釗': '钊', '釙': '钋', '釕': '钌',
	'釷': '钍', '釺': '钎', '釧': '钏', '釤': '钐', '釩': '钒',
	'釣': '钓', '鍆': '钔', '釹': '钕', '鍚': '钖', '釵': '钗',
	'鈣': '钙', '鈈': '钚', '鈦': '钛', '鈍': '钝', '鈔': '钞',
	'鍾': '钟', '鐘': '钟', '鈉': '钠', '鋇': '钡', '鋼': '钢',
	'鈑': '钣', '鈐': '钤', '鑰': '钥', '鈞': '钧', '鎢': '钨',
	'鉤': '钩', '鈧': '钪', '鈁': '钫', '鈥': '钬', '鈄': '钭',
	'鈕': '钮', '鈀': '钯', '鈺': '钰', '錢': '钱', '鉦': '钲',
	'鉗': '钳', '鈷': '钴', '缽': '钵', '鈳': '钶', '鉕': '钷',
	'鈽': '钸', '鈸': '钹', '鉞': '钺', '鑽': '钻', '鉬': '钼',
	'鉭': '钽', '鉀': '钾', '鈿': '钿', '鈾': '铀', '鐵': '铁',
	'鉑': '铂', '鈴': '铃', '鑠': '铄', '鉛': '铅', '鉚': '铆',
	'鈰': '铈', '鉉': '铉', '鉈': '铊', '鉍': '铋', '鈹': '铍',
	'鐸': '铎', '銬': '铐', '銠': '铑', '鉺': '铒', '銪': '铕',
	'鋁': '铝', '銅': '铜', '銱': '铞', '銦': '铟', '銖': '铢',
	'銑': '铣', '鋌': '铤', '銩': '铥', '銛': '铦', '鏵': '铧',
	'銓': '铨', '鎧': '铠', '銻': '锑', '銷': '销', '鎖': '锁',
	'鋰': '锂', '鋤': '锄', '鍋': '锅', '鋯': '锆', '鋨': '锇',
	'鏽': '锈', '銹': '锈', '銼': '锉', '鋝': '锊', '鋒': '锋',
	'鋅': '锌', '鋭': '锐', '銳': '锐', '鋃': '锒', '鋟': '锓',
	'鋦': '锔', '錒': '锕', '錆': '锖', '鍺': '锗', '錯': '错',
	'錨': '锚', '錛': '锛', '錡': '锜', '錁': '锞', '錕': '锟',
	'錫': '锡', '錮': '锢', '鑼': '锣', '錘': '锤', '錐': '锥',
	'錦': '锦', '鍁': '锨', '錈': '锩', '錇': '锫', '錟': '锬',
	'錠': '锭', '鍵': '键', '鋸': '锯', '錳': '锰', '錙': '锱',
	'鍥': '锲', '鍇': '锴', '鏘': '锵', '鍶': '锶', '鍔': '锷',
	'鍤': '锸', '鍬': '锹', '鍛': '锻', '鎪': '锼', '鍠': '锽',
	'鎿': '镎', '鎩': '铩', '鎔': '镕', '鎊': '镑', '鏈': '链',
	'鎰': '镒', '鎵': '镓', '鎸': '镌', '鎮': '镇', '鎘': '镉',
	'鎦': '镏', '鎬': '镐', '鏢': '镖', '鏜': '镗', '鏝': '镘',
	'鏍': '镙', '鏞': '镛', '鏡': '镜', '鏑': '镝', '鏃': '镞',
	'鐔': '镡', '鐐': '镣', '鏷': '镤', '鐓': '镦', '鐙': '镫',
	'鐒': '铹', '鐋': '铴', '鐦': '锎', '鐧': '锏', '鐫': '镌',
	'鐲': '镯', '鐮': '镰', '鑌': '镔', '鑊': '镬', '鑷': '镊',
	'鑲': '镶', '長': '长', '門': '门', '閂': '闩', '閃': '闪',
	'閆': '闫', '閉': '闭', '閌': '闶', '閏': '闰', '閑': '闲',
	'間': '间', '閔': '闵', '閘': '闸', '閡': '阂', '閨': '闺',
	'聞': '闻', '閩': '闽', '閭': '闾', '閥': '阀', '閣': '阁',
	'閽': '阍', '閻': '阎', '閼': '阏', '闡': '阐', '闌': '阑',
	'闃': '阒', '闊': '阔', '闈': '闱', '闋': '阕', '闔': '阖',
	'闖': '闯', '闐': '阗', '闕': '阙', '闚': '窥', '闞': '阚',
	'隊': '队', '陽': '阳', '陰': '阴', '陣': '阵', '階': '阶',
	'際': '际', '陸': '陆', '隴': '陇', '陳': '陈', '陘': '陉',
	'隉': '陧', '隕': '陨', '險': '险', '隨': '随', '隱': '隐',
	'隸': '隶', '雋': '隽', '難': '难', '雛': '雏', '讎': '雠',
	'靂': '雳', '霧': '雾', '霽': '霁', '黴': '霉', '靄': '霭',
	'靚': '靓', '靜': '静', '靨': '靥', '韃': '鞑', '鞽': '鞒',
	'韉': '鞯', '韋': '韦', '韌': '韧', '韍': '韨', '韓': '韩',
	'韙': '韪', '韞': '韫', '韜': '韬', '韻': '韵', '頁': '页',
	'頂': '顶', '頃': '顷', '項': '项', '順': '顺', '須': '须',
	'頊': '顼', '頑': '顽', '顧': '顾', '頓': '顿', '頎': '颀',
	'頒': '颁', '頌': '颂', '頏': '颃', '預': '预', '顱': '颅',
	'領': '领', '頗': '颇', '頸': '颈', '頡': '颉', '頰': '颊',
	'頲': '颋', '頜': '颌', '潁': '颍', '熲': '颎', '頦': '颏',
	'頤': '颐', '頻': '频', '頮': '颒', '頹': '颓', '頷': '颔',
	'頴': '颖', '穎': '颖', '顎': '颚', '顓': '颛', '題': '题',
	'顒': '颙', '顏': '颜', '額': '额', '顳': '颞', '顢': '颟',
	'顛': '颠', '顙': '颡', '顥': '颢', '顫': '颤', '顬': '颥',
	'顰': '颦', '顴': '颧', '風': '风', '颺': '飏', '颭': '飐',
	'颮': '飑', '颯': '飒', '颶': '飓', '颼': '飕', '飄': '飘',
	'飆': '飙', '飛': '飞', '飠': '饣', '飢': '饥', '飥': '饦',
	'餳': '饧', '飩': '饨', '飪': '饪', '飫': '饫', '飭': '饬',
	'飯': '饭', '飲': '饮', '餞': '饯', '飾': '饰', '飽': '饱',
	'飼': '饲', '飿': '饳', '飴': '饴', '餌': '饵', '饒': '饶',
	'餉': '饷', '餄': '饸', '餎': '饹', '餃': '饺', '餏': '饻',
	'餅': '饼', '餑': '饽', '餓': '饿', '餒': '馁', '餜': '馃',
	'餛': '馄', '餡': '馅', '館': '馆', '餷': '馇', '饋': '馈',
	'餶': '馉', '餿': '馊', '饞': '馋', '饁': '馌', '饃': '馍',
	'餺': '馎', '餾': '馏', '饈': '馐', '饉': '馑', '饅': '馒',
	'饊': '馓', '饌': '馔', '饢': '馕', '馬': '马', '馭': '驭',
	'馱': '驮', '馴': '驯', '馳': '驰', '驅': '驱', '駁': '驳',
	'駛': '驶', '駝': '驼', '駐': '驻', '駟': '驷', '駙': '驸',
	'駒': '驹', '駘': '骀', '駕': '驾', '駱': '骆', '駭': '骇',
	'駢': '骈', '驌': '骕', '騁': '骋', '驗': '验', '騂': '骍',
	'駸': '骎', '駿': '骏', '騏': '骐', '騎': '骑', '騍': '骒',
	'騅': '骓', '驂': '骖', '騙': '骗', '騭': '骘', '騷': '骚',
	'騖': '骛', '驁': '骜', '騮': '骝', '騫': '骞', '騸': '骟',
	'驃': '骠', '騾': '骡', '驄': '骢', '驏': '骣', '驟': '骤',
	'驥': '骥', '驤': '骧', '髏': '髅', '髖': '髋', '髕': '髌',
	'鬆': '松', '鬢': '鬓', '魘': '魇', '魎': '魉', '魚': '鱼',
	'魴': '鲂', '魷': '鱿', '魯': '鲁', '鮁': '鲅', '鮃': '鲆',
	'鮎': '鲇', '鮓': '鲊', '鮒': '鲋', '鮑': '鲍', '鮍': '鲏',
	'鮐': '鲐', '鮭': '鲑', '鮚': '鲒', '鮪': '鲔', '鮞': '鲕',
	'鮦': '鲖', '鮜': '鲘', '鮫': '鲛', '鮮': '鲜', '鮺': '鲝',
	'鯗': '鲞', '鮬': '鳑', '鯁': '鲠', '鯉': '鲤', '鯀': '鲧',
	'鯇': '鲩', '鯽': '鲫', '鯒': '鲬', '鯊': '鲨', '鯔': '鲻',
	'鯡': '鲱', '鯤': '鲲', '鯧': '鲳', '鯝': '鲴', '鯢': '鲵',
	'鯰': '鲶', '鯛': '鲷', '鯨': '鲸', '鯵': '鲹', '鯴': '鲺',
	'鯿': '鳊', '鰈': '鲽', '鰏': '鲾', '鰐': '鳄', '鰉': '鳇',
	'鰁': '鳈', '鰒': '鳆', '鰍': '鳅', '鰓': '鳃', '鰜': '鳒',
	'鰟': '鳑', '鰠': '鳋', '鰣': '鲥', '鰥': '鳏', '鰨': '鳎',
	'鰩': '鳐', '鰭': '鳍', '鰱': '鲢', '鰾': '鳔', '鱈': '鳕',
	'鱉': '鳖', '鰹': '鲣', '鰳': '鳓', '鰲': '鳌', '鰷': '鲦',
	'鰻': '鳗', '鱅': '鳙', '鱖': '鳜', '鱔': '鳝', '鱗': '鳞',
	'鱒': '鳟', '鱷': '鳄', '鱸': '鲈', '鱺': '鲡', '鳥': '鸟',
	'鳩': '鸠', '鳶': '鸢', '鳲': '鸤', '鷗': '鸥', '鴉': '鸦',
	'鴇': '鸨', '鴆': '鸩', '鴣': '鸪', '鶇': '鸫', '鸕': '鸬',
	'鴨': '鸭', '鴞': '鸮', '鴦': '鸯', '鴒': '鸰', '鴟': '鸱',
	'鴝': '鸲', '鴛': '鸳', '鴬': '莺', '鴕': '鸵', '鷥': '鸶',
	'鷙': '鸷', '鴯': '鸸', '鴰': '鸹', '鵂': '鸺', '鴴': '鸻',
	'鵃': '鸼', '鴿': '鸽', '鸞': '鸾', '鴻': '鸿', '鵐': '鹀',
	'鵓': '鹁', '鸝': '鹂', '鵑': '鹃', '鵠': '鹄', '鵝': '鹅',
	'鵒': '鹆', '鷳': '鹇', '鵜': '鹈', '鵡': '鹉', '鵲': '鹊',
	'鶓': '鹋', '鵪': '鹌', '鶤': '鹍', '鵯': '鹎', '鵬': '鹏',
	'鶉': '鹑', '鶊': '鹒', '鶘': '鹕', '鶚': '鹗', '鶻': '鹘',
	'鶖': '鹙', '鶥': '鹛', '鶩': '骛', '鷂': '鹞', '鶲': '鹟',
	'鶹': '鹠', '鶺': '鹡', '鷁': '鹢', '鶼': '鹣', '鶴': '鹤',
	'鷖': '鹥', '鷓': '鹧', '鷚': '鹨', '鷯': '鹩', '鷦': '鹪',
	'鷲': '鹫', '鷸': '鹬', '鷺': '鹭', '鷹': '鹰', '鸚': '鹦',
	'鸛': '鹳', '鹺': '鹾', '麥': '麦', '麩': '麸', '黃': '黄',
	'黌': '黉', '黶': '黡', '黷': '黩', '黲': '黪', '黽': '黾',
	'黿': '鼋', '鼂': '鼌', '鼉': '鼍', '鼴': '鼹', '齇': '齄',
	'齏': '齑', '齒': '齿', '齔': '龀', '齕': '龁', '齗': '龂',
	'齟': '龃', '齡': '龄', '齙': '龅', '齠': '龆', '齜': '龇',
	'齦': '龈', '齬': '龉', '齪': '龊', '齲': '龋', '齷': '龌',
	'龍': '龙', '龔': '龚', '龕': '龛', '龜': '龟',
}
