package materials

// materialList is the material profile table shipped with the printer
// firmware. It is indexed into a Catalog once at construction and never
// modified afterwards.
var materialList = []Material{
	{GUID: "7cbdb9ca-081a-456f-a6ba-f73e4e9cb856", Brand: "Ultimaker", Material: "ABS", Color: "Pearl Gold", Version: 28, Density: 1.1},
	{GUID: "60636bb4-518f-42e7-8237-fe77b194ebe0", Brand: "Generic", Material: "ABS", Color: "Generic", Version: 25, Density: 1.1},
	{GUID: "7e6207c4-22ff-441a-b261-ff89f166d6a0", Brand: "Generic", Material: "Breakaway", Color: "Generic", Version: 25, Density: 1.22},
	{GUID: "12f41353-1a33-415e-8b4f-a775a6c70cc6", Brand: "Generic", Material: "CPE", Color: "Generic", Version: 28, Density: 1.27},
	{GUID: "e2409626-b5a0-4025-b73e-b58070219259", Brand: "Generic", Material: "CPE+", Color: "Generic", Version: 27, Density: 1.18},
	{GUID: "28fb4162-db74-49e1-9008-d05f1e8bef5c", Brand: "Generic", Material: "Nylon", Color: "Generic", Version: 24, Density: 1.14},
	{GUID: "98c05714-bf4e-4455-ba27-57d74fe331e4", Brand: "Generic", Material: "PC", Color: "Generic", Version: 26, Density: 1.19},
	{GUID: "1cbfaeb3-1906-4b26-b2e7-6f777a8c197a", Brand: "Generic", Material: "PETG", Color: "Generic", Version: 13, Density: 1.27},
	{GUID: "506c9f0d-e3aa-4bd4-b2d2-23e2425b1aa9", Brand: "Generic", Material: "PLA", Color: "Generic", Version: 25, Density: 1.24},
	{GUID: "aa22e9c7-421f-4745-afc2-81851694394a", Brand: "Generic", Material: "PP", Color: "Generic", Version: 27, Density: 0.89},
	{GUID: "86a89ceb-4159-47f6-ab97-e9953803d70f", Brand: "Generic", Material: "PVA", Color: "Generic", Version: 26, Density: 1.23},
	{GUID: "9d5d2d7c-4e77-441c-85a0-e9eefd4aa68c", Brand: "Generic", Material: "Tough PLA", Color: "Generic", Version: 19, Density: 1.24},
	{GUID: "1d52b2be-a3a2-41de-a8b1-3bcdb5618695", Brand: "Generic", Material: "TPU 95A", Color: "Generic", Version: 27, Density: 1.22},
	{GUID: "2f9d2279-9b0e-4765-bf9b-d1e1e13f3c49", Brand: "Ultimaker", Material: "ABS", Color: "Black", Version: 28, Density: 1.1},
	{GUID: "7c9575a6-c8d6-40ec-b3dd-18d7956bfaae", Brand: "Ultimaker", Material: "ABS", Color: "Blue", Version: 28, Density: 1.1},
	{GUID: "3400c0d1-a4e3-47de-a444-7b704f287171", Brand: "Ultimaker", Material: "ABS", Color: "Green", Version: 28, Density: 1.1},
	{GUID: "8b75b775-d3f2-4d0f-8fb2-2a3dd53cf673", Brand: "Ultimaker", Material: "ABS", Color: "Grey", Version: 28, Density: 1.1},
	{GUID: "0b4ca6ef-eac8-4b23-b3ca-5f21af00e54f", Brand: "Ultimaker", Material: "ABS", Color: "Orange", Version: 28, Density: 1.1},
	{GUID: "763c926e-a5f7-4ba0-927d-b4e038ea2735", Brand: "Ultimaker", Material: "ABS", Color: "Silver Metallic", Version: 28, Density: 1.1},
	{GUID: "5df7afa6-48bd-4c19-b314-839fe9f08f1f", Brand: "Ultimaker", Material: "ABS", Color: "Red", Version: 28, Density: 1.1},
	{GUID: "173a7bae-5e14-470e-817e-08609c61e12b", Brand: "Ultimaker", Material: "CPE", Color: "Light Grey", Version: 31, Density: 1.27},
	{GUID: "5253a75a-27dc-4043-910f-753ae11bc417", Brand: "Ultimaker", Material: "ABS", Color: "White", Version: 28, Density: 1.1},
	{GUID: "e873341d-d9b8-45f9-9a6f-5609e1bcff68", Brand: "Ultimaker", Material: "ABS", Color: "Yellow", Version: 28, Density: 1.1},
	{GUID: "7e6207c4-22ff-441a-b261-ff89f166d5f9", Brand: "Ultimaker", Material: "Breakaway", Color: "White", Version: 29, Density: 1.22},
	{GUID: "a8955dc3-9d7e-404d-8c03-0fd6fee7f22d", Brand: "Ultimaker", Material: "CPE", Color: "Black", Version: 31, Density: 1.27},
	{GUID: "4d816290-ce2e-40e0-8dc8-3f702243131e", Brand: "Ultimaker", Material: "CPE", Color: "Blue", Version: 31, Density: 1.27},
	{GUID: "10961c00-3caf-48e9-a598-fa805ada1e8d", Brand: "Ultimaker", Material: "CPE", Color: "Dark Grey", Version: 31, Density: 1.27},
	{GUID: "7ff6d2c8-d626-48cd-8012-7725fa537cc9", Brand: "Ultimaker", Material: "CPE", Color: "Green", Version: 31, Density: 1.27},
	{GUID: "1f3c3be1-2e60-4343-b35d-cb383958d992", Brand: "Ultimaker", Material: "PETG", Color: "Green Translucent", Version: 30, Density: 1.27},
	{GUID: "1aca047a-42df-497c-abfb-0e9cb85ead52", Brand: "Ultimaker", Material: "CPE+", Color: "Black", Version: 29, Density: 1.18},
	{GUID: "a9c340fe-255f-4914-87f5-ec4fcb0c11ef", Brand: "Ultimaker", Material: "CPE+", Color: "Transparent", Version: 29, Density: 1.18},
	{GUID: "6df69b13-2d96-4a69-a297-aedba667e710", Brand: "Ultimaker", Material: "CPE+", Color: "White", Version: 29, Density: 1.18},
	{GUID: "00181d6c-7024-479a-8eb7-8a2e38a2619a", Brand: "Ultimaker", Material: "CPE", Color: "Red", Version: 31, Density: 1.27},
	{GUID: "bd0d9eb3-a920-4632-84e8-dcd6086746c5", Brand: "Ultimaker", Material: "CPE", Color: "Transparent", Version: 31, Density: 1.27},
	{GUID: "881c888e-24fb-4a64-a4ac-d5c95b096cd7", Brand: "Ultimaker", Material: "CPE", Color: "White", Version: 31, Density: 1.27},
	{GUID: "b9176a2a-7a0f-4821-9f29-76d882a88682", Brand: "Ultimaker", Material: "CPE", Color: "Yellow", Version: 31, Density: 1.27},
	{GUID: "c64c2dbe-5691-4363-a7d9-66b2dc12837f", Brand: "Ultimaker", Material: "Nylon", Color: "Black", Version: 27, Density: 1.14},
	{GUID: "e256615d-a04e-4f53-b311-114b90560af9", Brand: "Ultimaker", Material: "Nylon", Color: "Transparent", Version: 27, Density: 1.14},
	{GUID: "e92b1f0b-a069-4969-86b4-30127cfb6f7b", Brand: "Ultimaker", Material: "PC", Color: "Black", Version: 29, Density: 1.19},
	{GUID: "8a38a3e9-ecf7-4a7d-a6a9-e7ac35102968", Brand: "Ultimaker", Material: "PC", Color: "Transparent", Version: 29, Density: 1.19},
	{GUID: "5e786b05-a620-4a87-92d0-f02becc1ff98", Brand: "Ultimaker", Material: "PC", Color: "White", Version: 29, Density: 1.19},
	{GUID: "3ee70a86-77d8-4b87-8005-e4a1bc57d2ce", Brand: "Ultimaker", Material: "PLA", Color: "Black", Version: 26, Density: 1.24},
	{GUID: "44a029e6-e31b-4c9e-a12f-9282e29a92ff", Brand: "Ultimaker", Material: "PLA", Color: "Blue", Version: 26, Density: 1.24},
	{GUID: "2433b8fb-dcd6-4e36-9cd5-9f4ee551c04c", Brand: "Ultimaker", Material: "PLA", Color: "Green", Version: 26, Density: 1.24},
	{GUID: "fe3982c8-58f4-4d86-9ac0-9ff7a3ab9cbc", Brand: "Ultimaker", Material: "PLA", Color: "Magenta", Version: 26, Density: 1.24},
	{GUID: "d9549dba-b9df-45b9-80a5-f7140a9a2f34", Brand: "Ultimaker", Material: "PLA", Color: "Orange", Version: 26, Density: 1.24},
	{GUID: "d9fc79db-82c3-41b5-8c99-33b3747b8fb3", Brand: "Ultimaker", Material: "PLA", Color: "Pearl-White", Version: 26, Density: 1.24},
	{GUID: "9cfe5bf1-bdc5-4beb-871a-52c70777842d", Brand: "Ultimaker", Material: "PLA", Color: "Red", Version: 26, Density: 1.24},
	{GUID: "e509f649-9fe6-4b14-ac45-d441438cb4ef", Brand: "Ultimaker", Material: "PLA", Color: "White", Version: 26, Density: 1.24},
	{GUID: "0e01be8c-e425-4fb1-b4a3-b79f255f1db9", Brand: "Ultimaker", Material: "PLA", Color: "Silver Metallic", Version: 26, Density: 1.24},
	{GUID: "532e8b3d-5fd4-4149-b936-53ada9bd6b85", Brand: "Ultimaker", Material: "PLA", Color: "Transparent", Version: 26, Density: 1.24},
	{GUID: "fe15ed8a-33c3-4f57-a2a7-b4b78a38c3cb", Brand: "Ultimaker", Material: "PVA", Color: "Natural", Version: 30, Density: 1.23},
	{GUID: "03f24266-0291-43c2-a6da-5211892a2699", Brand: "Ultimaker", Material: "Tough PLA", Color: "Black", Version: 22, Density: 1.22},
	{GUID: "07a4547f-d21f-41a0-8eee-bc92125221b3", Brand: "Ultimaker", Material: "TPU 95A", Color: "Red", Version: 30, Density: 1.22},
	{GUID: "c8e4a85e-b256-4468-8516-0aa98c69c7d7", Brand: "Ultimaker", Material: "PETG", Color: "Green", Version: 30, Density: 1.27},
	{GUID: "c8394116-30ba-4112-b4d9-8b2394278cb3", Brand: "Ultimaker", Material: "PETG", Color: "Grey", Version: 30, Density: 1.27},
	{GUID: "a02a3978-eb33-47ca-b32b-d08b92b58638", Brand: "Ultimaker", Material: "PETG", Color: "Orange", Version: 30, Density: 1.27},
	{GUID: "9680dff6-7aa5-400b-982c-40a0de06a718", Brand: "Ultimaker", Material: "PETG", Color: "Red", Version: 30, Density: 1.27},
	{GUID: "40a273c6-0e15-4db5-a278-8eb0b4a9e293", Brand: "Ultimaker", Material: "PETG", Color: "Silver", Version: 30, Density: 1.27},
	{GUID: "61eb5c6c-0110-49de-9756-13b8c7cc2ff1", Brand: "Ultimaker", Material: "PETG", Color: "White", Version: 30, Density: 1.27},
	{GUID: "d67a3ccb-6b51-4013-bdac-4c59e952aaf4", Brand: "Ultimaker", Material: "PETG", Color: "Yellow Fluorescent", Version: 30, Density: 1.27},
	{GUID: "9c1959d0-f597-46ec-9131-34020c7a54fc", Brand: "Ultimaker", Material: "PLA", Color: "Yellow", Version: 26, Density: 1.24},
	{GUID: "c7005925-2a41-4280-8cdd-4029e3fe5253", Brand: "Ultimaker", Material: "PP", Color: "Transparent", Version: 30, Density: 0.89},
	{GUID: "6d71f4ad-29ab-4b50-8f65-22d99af294dd", Brand: "Ultimaker", Material: "Tough PLA", Color: "Green", Version: 22, Density: 1.22},
	{GUID: "2db25566-9a91-4145-84a5-46c90ed22bdf", Brand: "Ultimaker", Material: "Tough PLA", Color: "Red", Version: 22, Density: 1.24},
	{GUID: "851427a0-0c9a-4d7c-a9a8-5cc92f84af1f", Brand: "Ultimaker", Material: "Tough PLA", Color: "White", Version: 22, Density: 1.24},
	{GUID: "eff40bcf-588d-420d-a3bc-a5ffd8c7f4b3", Brand: "Ultimaker", Material: "TPU 95A", Color: "Black", Version: 30, Density: 1.22},
	{GUID: "5f4a826c-7bfe-460f-8650-a9178b180d34", Brand: "Ultimaker", Material: "TPU 95A", Color: "Blue", Version: 30, Density: 1.22},
	{GUID: "6a2573e6-c8ee-4c66-8029-3ebb3d5adc5b", Brand: "Ultimaker", Material: "TPU 95A", Color: "White", Version: 30, Density: 1.22},
	{GUID: "5f9f3de0-045b-48d9-84ec-19db92be7603", Brand: "Ultimaker", Material: "PETG", Color: "Black", Version: 30, Density: 1.27},
	{GUID: "2257ab94-fb27-42e6-865c-05aa6717504b", Brand: "Ultimaker", Material: "PETG", Color: "Blue", Version: 30, Density: 1.27},
	{GUID: "e0af2080-29fc-4b18-a5c0-42ca112f507f", Brand: "Ultimaker", Material: "PETG", Color: "Blue Translucent", Version: 30, Density: 1.27},
	{GUID: "218379df-4a67-4668-b5f8-2a14c92bce96", Brand: "Ultimaker", Material: "PETG", Color: "Yellow", Version: 30, Density: 1.27},
	{GUID: "c8639119-5cae-4f56-9bcf-3bb00e8225fd", Brand: "Ultimaker", Material: "PETG", Color: "Red Translucent", Version: 30, Density: 1.27},
	{GUID: "7418eca4-e2c4-45b1-a022-37180861fd39", Brand: "Ultimaker", Material: "PETG", Color: "Transparent", Version: 30, Density: 1.27},
	{GUID: "55317359-2538-4b89-855d-e74d3c3d5916", Brand: "DSM", Material: "Novamid ID 1030 CF", Color: "Generic", Version: 1, Density: 1},
	{GUID: "efbc209c-14ec-4671-acca-93eef5a207f8", Brand: "Owens Corning", Material: "XSTRAND GF30-PA6", Color: "Generic", Version: 2, Density: 1.17},
	{GUID: "6660eb2e-aa40-49ad-ac9b-ada979f3de9b", Brand: "Ultimaker", Material: "Tough PLA", Color: "Gray", Version: 12, Density: 1.24},
	{GUID: "4b049931-6ee9-408c-8588-ddd4673467d1", Brand: "Ultimaker", Material: "Tough PLA", Color: "Blue", Version: 12, Density: 1.24},
	{GUID: "bfdb0787-032d-4cf5-9975-964132bd641c", Brand: "Ultimaker", Material: "Tough PLA", Color: "Yellow", Version: 12, Density: 1.24},
}
