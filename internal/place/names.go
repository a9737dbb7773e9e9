package place

// cityNames maps Chinese city names to the romanizations OpenWeatherMap
// recognises. Values must never appear as keys so that resolving an
// already-canonical name is a no-op.
var cityNames = map[string]string{
	// Municipalities and special regions.
	"北京": "Beijing",
	"上海": "Shanghai",
	"天津": "Tianjin",
	"重庆": "Chongqing",
	"香港": "Hong Kong",
	"澳门": "Macau",
	"台北": "Taipei",

	// Provincial capitals.
	"石家庄":  "Shijiazhuang",
	"太原":   "Taiyuan",
	"呼和浩特": "Hohhot",
	"沈阳":   "Shenyang",
	"长春":   "Changchun",
	"哈尔滨":  "Harbin",
	"南京":   "Nanjing",
	"杭州":   "Hangzhou",
	"合肥":   "Hefei",
	"福州":   "Fuzhou",
	"南昌":   "Nanchang",
	"济南":   "Jinan",
	"郑州":   "Zhengzhou",
	"武汉":   "Wuhan",
	"长沙":   "Changsha",
	"广州":   "Guangzhou",
	"南宁":   "Nanning",
	"海口":   "Haikou",
	"成都":   "Chengdu",
	"贵阳":   "Guiyang",
	"昆明":   "Kunming",
	"拉萨":   "Lhasa",
	"西安":   "Xi'an",
	"兰州":   "Lanzhou",
	"西宁":   "Xining",
	"银川":   "Yinchuan",
	"乌鲁木齐": "Urumqi",

	// Hebei.
	"保定":  "Baoding",
	"唐山":  "Tangshan",
	"秦皇岛": "Qinhuangdao",
	"邯郸":  "Handan",
	"邢台":  "Xingtai",
	"张家口": "Zhangjiakou",
	"承德":  "Chengde",
	"沧州":  "Cangzhou",
	"廊坊":  "Langfang",
	"衡水":  "Hengshui",

	// Shanxi and Inner Mongolia.
	"大同":   "Datong",
	"阳泉":   "Yangquan",
	"长治":   "Changzhi",
	"晋城":   "Jincheng",
	"运城":   "Yuncheng",
	"临汾":   "Linfen",
	"包头":   "Baotou",
	"鄂尔多斯": "Ordos",
	"赤峰":   "Chifeng",

	// Northeast.
	"大连":   "Dalian",
	"鞍山":   "Anshan",
	"抚顺":   "Fushun",
	"丹东":   "Dandong",
	"锦州":   "Jinzhou",
	"营口":   "Yingkou",
	"吉林":   "Jilin",
	"四平":   "Siping",
	"延吉":   "Yanji",
	"齐齐哈尔": "Qiqihar",
	"牡丹江":  "Mudanjiang",
	"佳木斯":  "Jiamusi",
	"大庆":   "Daqing",

	// Jiangsu.
	"苏州":  "Suzhou",
	"无锡":  "Wuxi",
	"常州":  "Changzhou",
	"徐州":  "Xuzhou",
	"南通":  "Nantong",
	"扬州":  "Yangzhou",
	"镇江":  "Zhenjiang",
	"盐城":  "Yancheng",
	"连云港": "Lianyungang",
	"淮安":  "Huai'an",
	"泰州":  "Taizhou",

	// Zhejiang.
	"宁波": "Ningbo",
	"温州": "Wenzhou",
	"嘉兴": "Jiaxing",
	"湖州": "Huzhou",
	"绍兴": "Shaoxing",
	"金华": "Jinhua",
	"台州": "Taizhou",
	"舟山": "Zhoushan",
	"丽水": "Lishui",
	"衢州": "Quzhou",

	// Anhui, Fujian, Jiangxi.
	"芜湖":  "Wuhu",
	"蚌埠":  "Bengbu",
	"安庆":  "Anqing",
	"黄山":  "Huangshan",
	"马鞍山": "Ma'anshan",
	"厦门":  "Xiamen",
	"泉州":  "Quanzhou",
	"漳州":  "Zhangzhou",
	"莆田":  "Putian",
	"九江":  "Jiujiang",
	"赣州":  "Ganzhou",
	"景德镇": "Jingdezhen",
	"上饶":  "Shangrao",

	// Shandong.
	"青岛": "Qingdao",
	"烟台": "Yantai",
	"威海": "Weihai",
	"潍坊": "Weifang",
	"淄博": "Zibo",
	"济宁": "Jining",
	"临沂": "Linyi",
	"泰安": "Tai'an",
	"日照": "Rizhao",
	"东营": "Dongying",
	"聊城": "Liaocheng",
	"德州": "Dezhou",

	// Henan.
	"洛阳": "Luoyang",
	"开封": "Kaifeng",
	"新乡": "Xinxiang",
	"安阳": "Anyang",
	"南阳": "Nanyang",
	"许昌": "Xuchang",
	"信阳": "Xinyang",
	"商丘": "Shangqiu",

	// Hubei and Hunan.
	"宜昌":  "Yichang",
	"襄阳":  "Xiangyang",
	"荆州":  "Jingzhou",
	"十堰":  "Shiyan",
	"黄石":  "Huangshi",
	"株洲":  "Zhuzhou",
	"湘潭":  "Xiangtan",
	"衡阳":  "Hengyang",
	"岳阳":  "Yueyang",
	"常德":  "Changde",
	"张家界": "Zhangjiajie",

	// Guangdong, Guangxi, Hainan.
	"深圳": "Shenzhen",
	"珠海": "Zhuhai",
	"汕头": "Shantou",
	"佛山": "Foshan",
	"东莞": "Dongguan",
	"中山": "Zhongshan",
	"惠州": "Huizhou",
	"江门": "Jiangmen",
	"湛江": "Zhanjiang",
	"肇庆": "Zhaoqing",
	"桂林": "Guilin",
	"柳州": "Liuzhou",
	"北海": "Beihai",
	"三亚": "Sanya",

	// Southwest.
	"绵阳": "Mianyang",
	"宜宾": "Yibin",
	"泸州": "Luzhou",
	"乐山": "Leshan",
	"南充": "Nanchong",
	"遵义": "Zunyi",
	"大理": "Dali",
	"丽江": "Lijiang",
	"曲靖": "Qujing",

	// Northwest.
	"宝鸡":   "Baoji",
	"咸阳":   "Xianyang",
	"延安":   "Yan'an",
	"汉中":   "Hanzhong",
	"天水":   "Tianshui",
	"嘉峪关":  "Jiayuguan",
	"克拉玛依": "Karamay",
	"喀什":   "Kashgar",
}
